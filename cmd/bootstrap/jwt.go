package bootstrap

import (
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, duration, cfg.JWT.Issuer), nil
}
