// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	cataloguesfeature "github.com/igor-siergiej/jewellery-catalogue/internal/app/features/catalogues"
	designsfeature "github.com/igor-siergiej/jewellery-catalogue/internal/app/features/designs"
	healthfeature "github.com/igor-siergiej/jewellery-catalogue/internal/app/features/health"
	imagesfeature "github.com/igor-siergiej/jewellery-catalogue/internal/app/features/images"
	materialsfeature "github.com/igor-siergiej/jewellery-catalogue/internal/app/features/materials"
	catalogueservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/catalogues"
	designservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/designs"
	imageservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/images"
	materialservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/materials"
	cataloguestore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/catalogues"
	designstore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/designs"
	materialstore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/materials"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/idgen"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point the Mongo database and
// the image bucket client in deps are ready to use.
//
// The wiring is stores -> services -> feature routers. Catalogues use
// ObjectID-hex ids (the surrogate scheme); designs, materials, and images
// use generated UUIDs.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	catalogues := cataloguestore.New(deps.MongoDatabase)
	designs := designstore.New(deps.MongoDatabase)
	materials := materialstore.New(deps.MongoDatabase)

	catalogueSvc := catalogueservice.New(catalogues, idgen.ObjectID{}, logger)
	imageSvc := imageservice.New(deps.Bucket, logger)
	materialSvc := materialservice.New(materials, catalogues, idgen.UUID{}, logger)
	designSvc := designservice.New(designs, catalogues, imageSvc, idgen.UUID{}, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		catalogueHandler := cataloguesfeature.NewHandler(catalogueSvc, logger)
		api.Mount("/catalogue", cataloguesfeature.Routes(catalogueHandler))

		materialHandler := materialsfeature.NewHandler(materialSvc, logger)
		api.Mount("/materials", materialsfeature.CatalogueRoutes(materialHandler))
		api.Mount("/material", materialsfeature.ItemRoutes(materialHandler))

		designHandler := designsfeature.NewHandler(designSvc, logger)
		api.Mount("/designs", designsfeature.CatalogueRoutes(designHandler))
		api.Mount("/design", designsfeature.ItemRoutes(designHandler))

		imageHandler := imagesfeature.NewHandler(imageSvc, logger)
		api.Mount("/image", imagesfeature.Routes(imageHandler))
	})

	return r, nil
}
