package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"test-grid/src/core/config"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter node config file interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	path := "nodeConfig.json"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	hub := ""
	hubPrompt := &survey.Input{
		Message: "Hub URL:",
		Default: "http://localhost:4444",
	}
	if err := survey.AskOne(hubPrompt, &hub, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("failed to get hub URL: %w", err)
	}

	host := ""
	hostPrompt := &survey.Input{
		Message: `Node host ("ip" resolves this machine's address):`,
		Default: "ip",
	}
	if err := survey.AskOne(hostPrompt, &host); err != nil {
		return fmt.Errorf("failed to get node host: %w", err)
	}

	portStr := ""
	portPrompt := &survey.Input{
		Message: "Node port:",
		Default: strconv.Itoa(config.DefaultNodePort),
	}
	if err := survey.AskOne(portPrompt, &portStr, survey.WithValidator(validPort)); err != nil {
		return fmt.Errorf("failed to get node port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	browsers := []string{}
	browserPrompt := &survey.MultiSelect{
		Message: "Which browsers does this node offer?",
		Options: []string{"chrome", "firefox", "MicrosoftEdge", "safari"},
		Default: []string{"chrome", "firefox"},
	}
	if err := survey.AskOne(browserPrompt, &browsers); err != nil {
		return fmt.Errorf("failed to get browsers: %w", err)
	}

	maxSessionStr := ""
	maxSessionPrompt := &survey.Input{
		Message: "Maximum concurrent sessions:",
		Default: "5",
	}
	if err := survey.AskOne(maxSessionPrompt, &maxSessionStr, survey.WithValidator(validPositiveInt)); err != nil {
		return fmt.Errorf("failed to get max session: %w", err)
	}
	maxSession, _ := strconv.Atoi(maxSessionStr)

	verify := true
	verifyPrompt := &survey.Confirm{
		Message: "Drop capabilities that cannot run on this machine's platform?",
		Default: true,
	}
	if err := survey.AskOne(verifyPrompt, &verify); err != nil {
		return fmt.Errorf("failed to get platform verification choice: %w", err)
	}

	capabilities := make([]map[string]interface{}, 0, len(browsers))
	for _, browser := range browsers {
		capabilities = append(capabilities, map[string]interface{}{
			"browserName":  browser,
			"maxInstances": 5,
			"protocol":     config.DefaultProtocol,
		})
	}

	doc := map[string]interface{}{
		"hub":                        hub,
		"host":                       host,
		"port":                       port,
		"maxSession":                 maxSession,
		"capabilities":               capabilities,
		"enablePlatformVerification": verify,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	log.Info("wrote %s", path)
	return nil
}

func validPort(ans interface{}) error {
	s, _ := ans.(string)
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be 1-65535")
	}
	return nil
}

func validPositiveInt(ans interface{}) error {
	s, _ := ans.(string)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}
