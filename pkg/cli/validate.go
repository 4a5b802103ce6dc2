package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/cli/config"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var path string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "templates",
			Usage:       "Path to the TOML template file to validate",
			Sources:     cli.EnvVars("NEXBOARD_TEMPLATES"),
			Destination: &path,
			Required:    true,
		},
	}

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a template overlay file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			templates, err := config.LoadTemplateFile(path)
			if err != nil {
				return goerr.Wrap(err, "template file validation failed")
			}

			// Registration runs the same validation used at startup
			catalog := model.NewTemplateCatalog()
			for _, tpl := range templates {
				if err := catalog.Register(tpl); err != nil {
					return goerr.Wrap(err, "template validation failed", goerr.V("id", tpl.ID))
				}
			}

			logger.Info("Template file validation passed",
				"path", path,
				"template_count", len(templates),
			)
			for _, tpl := range templates {
				fieldCount := 0
				if tpl.DefaultMetadata != nil && tpl.DefaultMetadata.CustomFields != nil {
					fieldCount = len(*tpl.DefaultMetadata.CustomFields)
				}
				logger.Info("Template validated",
					"id", tpl.ID,
					"name", tpl.Name,
					"category", tpl.Category,
					"field_count", fieldCount,
				)
			}

			return nil
		},
	}
}
