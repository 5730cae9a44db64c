// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// The image bucket is created here when it does not exist yet, so the
// first design upload never races bucket creation.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := deps.Bucket.EnsureBucket(ctx); err != nil {
		logger.Error("bucket setup failed",
			zap.String("bucket", appCfg.BucketName), zap.Error(err))
		return fmt.Errorf("ensure bucket %q: %w", appCfg.BucketName, err)
	}
	return nil
}
