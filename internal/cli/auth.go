package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dressify/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Inicia sesión y guarda el token en el archivo de sesión",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, "Contraseña: ")
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimRight(password, "\r\n")

		nueva, err := client.Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if err := store.Save(nueva); err != nil {
			return err
		}

		fmt.Printf("Sesión iniciada como %s (%s)\n", nueva.Cuenta.Nombre, model.NormalizarRol(nueva.Cuenta.Rol))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cierra la sesión y borra el token guardado",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Sesión cerrada.")
		return nil
	},
}

var perfilCmd = &cobra.Command{
	Use:   "perfil",
	Short: "Muestra la cuenta con la sesión activa",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sess.Vacia() {
			fmt.Println("No hay sesión activa.")
			return nil
		}
		c := sess.Cuenta
		fmt.Printf("%s <%s>\nRol: %s\n", c.Nombre, c.Email, c.Rol)
		return nil
	},
}
