package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chinmay1088/walletd/api"
	"github.com/chinmay1088/walletd/wallet"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// session bundles what a walletd subcommand needs
type session struct {
	manager *wallet.Manager
	profile wallet.Profile
	client  *api.Client
}

// newSession resolves the profile, flags and RPC password into a client.
// The password comes from --rpc-password, then the unlocked store, then the
// walletd default.
func newSession(cmd *cobra.Command) (*session, error) {
	manager, err := wallet.NewManager()
	if err != nil {
		return nil, err
	}

	profile, err := resolveProfile(cmd, manager)
	if err != nil {
		return nil, err
	}

	password, err := resolvePassword(cmd, manager, profile)
	if err != nil {
		return nil, err
	}

	var log *zap.Logger
	if profile.Logging {
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	return &session{
		manager: manager,
		profile: profile,
		client:  wallet.NewClient(profile, password, log),
	}, nil
}

func resolveProfile(cmd *cobra.Command, manager *wallet.Manager) (wallet.Profile, error) {
	profile, err := manager.LoadProfile()
	if err != nil {
		return profile, err
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		profile.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		profile.Port = port
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		profile.Logging = true
	}

	if !strings.HasPrefix(profile.Host, "http://") && !strings.HasPrefix(profile.Host, "https://") {
		return profile, fmt.Errorf("host must include the scheme, e.g. http://%s", profile.Host)
	}

	return profile, nil
}

func resolvePassword(cmd *cobra.Command, manager *wallet.Manager, profile wallet.Profile) (string, error) {
	if cmd.Flags().Changed("rpc-password") {
		password, _ := cmd.Flags().GetString("rpc-password")
		return password, nil
	}

	if !manager.HasPassword() {
		return api.DefaultPassword, nil
	}

	endpoint := profile.Endpoint()
	if !manager.IsUnlocked(endpoint) {
		passphrase, err := readSecret("Enter your passphrase to unlock the RPC password: ")
		if err != nil {
			return "", err
		}
		if err := manager.Unlock(passphrase, endpoint); err != nil {
			return "", fmt.Errorf("failed to unlock password store: %w", err)
		}
	}

	return manager.Password(endpoint)
}

// readSecret prompts for a value without echoing it
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(secret), nil
}

// confirm asks a yes/no question, defaulting to no
func confirm(prompt string) bool {
	fmt.Printf("%s (y/n): ", prompt)

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// decode turns the outcome of a client call into a typed result.
// walletd errors are reported with their code.
func decode(resp *api.Response, err error, v any) error {
	if err != nil {
		return fmt.Errorf("walletd request failed: %w", err)
	}

	if err := resp.Decode(v); err != nil {
		var rpcErr *api.RPCError
		if errors.As(err, &rpcErr) {
			return fmt.Errorf("%s (code %d)", color.RedString(rpcErr.Message), rpcErr.Code)
		}
		return err
	}
	return nil
}

// result decodes the outcome of a client call into T
func result[T any](resp *api.Response, err error) (T, error) {
	var v T
	if err := decode(resp, err, &v); err != nil {
		return v, err
	}
	return v, nil
}

// done checks a call whose result carries no data
func done(resp *api.Response, err error) error {
	var empty struct{}
	return decode(resp, err, &empty)
}
