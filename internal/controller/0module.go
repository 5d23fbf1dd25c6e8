package controller

import (
	"go.uber.org/fx"

	controllermeta "github.com/visitstats/dashboard/internal/controller/meta"
	controllerv1 "github.com/visitstats/dashboard/internal/controller/v1"
	controllerweb "github.com/visitstats/dashboard/internal/controller/web"
)

type opt int

const (
	OptIncludeSwagger opt = iota
)

func Module(o ...opt) fx.Option {
	opts := []fx.Option{
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (web)
		controllerweb.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	}
	for _, opt := range o {
		switch opt {
		case OptIncludeSwagger:
			opts = append(opts, fx.Invoke(controllermeta.RegisterSwagger))
		}
	}

	return fx.Module("controller",
		// options
		opts...,
	)
}
