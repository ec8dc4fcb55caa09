package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configOnly bool

// rootCmd comando base del panel.
var rootCmd = &cobra.Command{
	Use:   "panel",
	Short: "Panel de administración de servicios sanitarios",
	Long: `Panel web de administración: clientes, servicios, empleados, vehículos, baños
químicos, adelantos y licencias. Todas las operaciones se delegan a la API REST configurada
en API_URL.

Subcomandos:
  serve - Inicia el servidor HTTP
  check - Verifica configuración, backend y almacén de sesiones
  purge - Borra las sesiones revocadas ya vencidas (SESSION_STORE=postgres)`,
	SilenceUsage: true,
}

func main() {
	checkCmd.Flags().BoolVar(&configOnly, "config-only", false, "Solo valida la configuración, sin conectarse")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(purgeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
