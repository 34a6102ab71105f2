// Package cli is the command surface of the Dressify client: it plays the
// part of the app's screens — login, sales management, product and account
// administration, and the report views — on top of the gateway and the
// reporting engine.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dressify/internal/apierror"
	"dressify/internal/config"
	"dressify/internal/gateway"
	"dressify/internal/session"
)

var (
	cfg    *config.Config
	store  *session.Store
	sess   session.Session
	client *gateway.Client
)

var rootCmd = &cobra.Command{
	Use:           "dressify",
	Short:         "Cliente de administración de la tienda Dressify",
	Long:          "Cliente de línea de comandos para la tienda Dressify:\ncuentas, productos, ventas y reportes contra el backend REST.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		store = session.NewStore(cfg.SessionFile)
		sess, err = store.Load()
		if err != nil {
			return err
		}
		client = gateway.New(cfg, sess)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

// requiereRol reproduces the app's role dispatch: each command family is
// reachable only from its navigator. Re-checks token staleness up front so a
// dead session reads as "sign in again" instead of a doomed request.
func requiereRol(roles ...string) error {
	if sess.Vacia() {
		return fmt.Errorf("%s", apierror.MsgNoAutorizado)
	}
	if sess.Expirada(time.Now()) {
		return fmt.Errorf("%s", apierror.MsgNoAutorizado)
	}
	rol := sess.Rol()
	for _, r := range roles {
		if rol == r {
			return nil
		}
	}
	return fmt.Errorf("%s", apierror.MsgSinPermisos)
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, perfilCmd)
	rootCmd.AddCommand(ventasCmd, productosCmd, cuentasCmd, reporteCmd)
}
