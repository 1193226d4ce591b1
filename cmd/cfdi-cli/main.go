// Command cfdi-cli ejecuta las consultas del API directamente contra un archivo de datos,
// sin levantar el servidor. Imprime el mismo envelope JSON que devolvería el endpoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "cfdi-cli",
		Short:         "Consulta los CFDIs de prueba del MVP CFDI API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataFile, "data", "", "archivo JSON de datos (default: DATA_FILE_PATH o data/dummy_cfdis.json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "registrar eventos en stderr")

	root.AddCommand(
		newDownloadCmd(opts),
		newValidateCmd(opts),
		newGenerateCmd(opts),
		newCatalogsCmd(opts),
		newHealthCmd(opts),
		newStatsCmd(opts),
		newLoginCmd(opts),
		newReportCmd(opts),
	)
	return root
}
