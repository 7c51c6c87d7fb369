package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
	"github.com/hrobot-io/hrobot/pkg/robotclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store webservice credentials",
		Long: `Verify a Robot webservice credential pair and persist it in the config file.

The webservice account is separate from the Hetzner account; its username
looks like "#ws+XXXXXXXX" and is managed in the Robot web interface.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Webservice username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if username == "" {
				return ErrUsernameRequired
			}

			fmt.Print("Webservice password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password := string(bytePassword)
			fmt.Println()

			client, err := robotclient.New(&hrobot.Config{
				Username: username,
				Password: password,
				BaseURL:  viper.GetString("base_url"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the pair with a cheap read call before persisting it.
			ctx := context.Background()

			_, err = client.Servers().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			config := loadConfig()
			config.Username = username
			config.Password = password

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", username)

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "webservice username")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored webservice credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Username = ""
			config.Password = ""

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
