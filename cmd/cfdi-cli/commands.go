package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/auth"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/cfdi"
	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
	"github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/accounts"
	"github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/mvp-cfdi-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mvp-cfdi-api/pkg/config"
	"github.com/jhoicas/mvp-cfdi-api/pkg/logger"
)

type options struct {
	dataFile string
	verbose  bool
}

// deps construye los casos de uso con la misma configuración que cmd/api.
type deps struct {
	cfg   *config.Config
	query *cfdi.QueryUseCase
	log   *logger.Logger
}

func (o *options) build() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dataFile != "" {
		cfg.Data.FilePath = o.dataFile
	}
	log := logger.Nop()
	if o.verbose {
		log = logger.New(logger.Config{Env: "development", Level: "debug", Out: os.Stderr})
	}
	store := filestore.NewDocumentStore(cfg.Data.FilePath, log.Component("filestore"))
	query := cfdi.NewQueryUseCase(store, infrapdf.NewMarotoReportGenerator(cfg.App.Name),
		cfdi.Config{Version: cfg.App.Version}, log.Component("cfdi"))
	return &deps{cfg: cfg, query: query, log: log}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// queryCmd arma un subcomando que ejecuta una consulta y la imprime.
func queryCmd[T any](opts *options, use, short string, run func(context.Context, *cfdi.QueryUseCase) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.build()
			if err != nil {
				return err
			}
			out, err := run(cmd.Context(), d.query)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newDownloadCmd(opts *options) *cobra.Command {
	return queryCmd(opts, "download", "Lista cfdis_descargados", func(ctx context.Context, q *cfdi.QueryUseCase) (*dto.DownloadResponse, error) {
		return q.ListDownloaded(ctx)
	})
}

func newValidateCmd(opts *options) *cobra.Command {
	return queryCmd(opts, "validate", "Lista cfdis_validacion con el conteo por estado", func(ctx context.Context, q *cfdi.QueryUseCase) (*dto.ValidateResponse, error) {
		return q.ListValidated(ctx)
	})
}

func newGenerateCmd(opts *options) *cobra.Command {
	return queryCmd(opts, "generate", "Lista cfdis_generados con el monto total", func(ctx context.Context, q *cfdi.QueryUseCase) (*dto.GenerateResponse, error) {
		return q.ListGenerated(ctx)
	})
}

func newCatalogsCmd(opts *options) *cobra.Command {
	return queryCmd(opts, "catalogos", "Muestra catalogos_sat", func(ctx context.Context, q *cfdi.QueryUseCase) (*dto.CatalogResponse, error) {
		return q.ListCatalogs(ctx)
	})
}

func newHealthCmd(opts *options) *cobra.Command {
	return queryCmd(opts, "health", "Verifica que el archivo de datos se pueda leer", func(ctx context.Context, q *cfdi.QueryUseCase) (*dto.HealthResponse, error) {
		return q.Health(ctx)
	})
}

func newStatsCmd(opts *options) *cobra.Command {
	return queryCmd(opts, "stats", "Estadísticas generales de todas las colecciones", func(ctx context.Context, q *cfdi.QueryUseCase) (*dto.StatsResponse, error) {
		return q.GeneralStats(ctx)
	})
}

func newLoginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Simula el login de demostración y muestra el token emitido",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.build()
			if err != nil {
				return err
			}
			seeds := accounts.DefaultAccounts()
			if d.cfg.Auth.DemoAccountsFile != "" {
				if seeds, err = accounts.LoadYAML(d.cfg.Auth.DemoAccountsFile); err != nil {
					return err
				}
			}
			dir, err := accounts.NewDirectory(seeds, d.cfg.Auth.BcryptCost)
			if err != nil {
				return err
			}
			uc := auth.NewAuthUseCase(dir, auth.SessionConfig{
				TokenSalt:  d.cfg.Auth.TokenSalt,
				SessionTTL: d.cfg.Auth.SessionTTL(),
			})
			session, err := uc.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.LoginResponse{
				Envelope: dto.NewEnvelope("Login exitoso", session.IssuedAt),
				User:     session.User,
				Token:    session.Token,
			})
		},
	}
}

func newReportCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Genera el PDF de cfdis_generados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.build()
			if err != nil {
				return err
			}
			pdf, filename, err := d.query.GeneratedReport(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reporte escrito en %s (%d bytes)\n", out, len(pdf))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (default: nombre sugerido con fecha)")
	return cmd
}
