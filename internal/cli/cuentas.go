package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dressify/internal/dto"
	"dressify/internal/model"
)

var cuentasCmd = &cobra.Command{
	Use:   "cuentas",
	Short: "Administración de cuentas (rol admin)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		return requiereRol(model.RolAdmin)
	},
}

var cuentasListarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista todas las cuentas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cuentas, err := client.ListarCuentas(cmd.Context(), cfg.PerPage)
		if err != nil {
			return err
		}
		for _, c := range cuentas {
			fmt.Printf("%s  %s <%s>  rol=%s\n", c.ID, c.Nombre, c.Email, c.Rol)
		}
		return nil
	},
}

var cuentaRol string

var cuentasCrearCmd = &cobra.Command{
	Use:   "crear <nombre> <email>",
	Short: "Registra una cuenta nueva",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := leerPassword("Contraseña: ")
		if err != nil {
			return err
		}
		confirmacion, err := leerPassword("Confirmar contraseña: ")
		if err != nil {
			return err
		}
		if err := client.CrearCuenta(cmd.Context(), dto.CrearCuentaRequest{
			Nombre:               args[0],
			Email:                args[1],
			Password:             password,
			PasswordConfirmacion: confirmacion,
			Rol:                  cuentaRol,
		}); err != nil {
			return err
		}
		fmt.Println("Cuenta creada correctamente.")
		return nil
	},
}

var cuentasEditarCmd = &cobra.Command{
	Use:   "editar <cuenta-id> <nombre> <email>",
	Short: "Actualiza nombre, correo y rol de una cuenta",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.ActualizarCuenta(cmd.Context(), args[0], dto.ActualizarCuentaRequest{
			Nombre: args[1],
			Email:  args[2],
			Rol:    cuentaRol,
		}); err != nil {
			return err
		}
		fmt.Println("Cuenta actualizada correctamente.")
		return nil
	},
}

var cuentasEliminarCmd = &cobra.Command{
	Use:   "eliminar <cuenta-id>",
	Short: "Elimina una cuenta",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.EliminarCuenta(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Cuenta eliminada.")
		return nil
	},
}

var cuentasPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Cambia la contraseña de la cuenta con sesión activa",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		actual, err := leerPassword("Contraseña actual: ")
		if err != nil {
			return err
		}
		nueva, err := leerPassword("Contraseña nueva: ")
		if err != nil {
			return err
		}
		confirmacion, err := leerPassword("Confirmar contraseña nueva: ")
		if err != nil {
			return err
		}
		if nueva != confirmacion {
			return fmt.Errorf("la confirmación no coincide con la nueva contraseña")
		}
		if err := client.CambiarPassword(cmd.Context(), sess.Cuenta.ID, dto.CambiarPasswordRequest{
			PasswordActual:       actual,
			PasswordNueva:        nueva,
			PasswordConfirmacion: confirmacion,
		}); err != nil {
			return err
		}
		fmt.Println("Contraseña cambiada correctamente.")
		return nil
	},
}

func leerPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	linea, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(linea, "\r\n"), nil
}

func init() {
	cuentasCrearCmd.Flags().StringVar(&cuentaRol, "rol", model.RolVendedor, "rol: admin | consultor | vendedor")
	cuentasEditarCmd.Flags().StringVar(&cuentaRol, "rol", model.RolVendedor, "rol: admin | consultor | vendedor")

	cuentasCmd.AddCommand(cuentasListarCmd, cuentasCrearCmd, cuentasEditarCmd, cuentasEliminarCmd, cuentasPasswordCmd)
}
