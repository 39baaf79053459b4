package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const envExampleFile = ".env.example"

type envSection struct {
	title string
	flags []envFlag
}

type envFlag struct {
	name    string
	example string
	comment string
}

var envSections = []envSection{
	{
		title: "Backend API",
		flags: []envFlag{
			{name: "backend-url", comment: "Backend base URL, empty runs from local storage only"},
			{name: "backend-timeout-secs", comment: "Timeout for one backend call"},
		},
	},
	{
		title: "Local Storage",
		flags: []envFlag{
			{name: "storage-driver", comment: "file, sqlite, redis or memory"},
			{name: "storage-path", comment: "Used by the file and sqlite drivers"},
			{name: "redis-addr", comment: "Used by the redis driver"},
			{name: "redis-db"},
			{name: "key-prefix"},
			{name: "cache-size", comment: "Read cache entries, 0 disables"},
		},
	},
	{
		title: "Admin",
		flags: []envFlag{
			{name: "admin-email", comment: "Accepted when the backend is unreachable"},
			{name: "admin-password", example: "change-me", comment: "Empty disables local admin login"},
		},
	},
	{
		title: "Site",
		flags: []envFlag{
			{name: "language", comment: "Initial language when none is persisted (en, ar)"},
			{name: "contact-limit-per-minute", comment: "Contact submissions per client per minute"},
			{name: "seed-samples", comment: "Seed sample projects into an empty local store"},
		},
	},
	{
		title: "HTTP Server",
		flags: []envFlag{
			{name: "server-host", example: "127.0.0.1"},
			{name: "server-port"},
			{name: "allow-origins", comment: "Comma separated CORS origins, * allows all"},
		},
	},
	{
		title: "Logging",
		flags: []envFlag{
			{name: "log-level", comment: "debug, info, warn or error"},
			{name: "log-format", comment: "json or text"},
		},
	},
}

func generateEnvExample(cmd *cobra.Command) error {
	fmt.Println("Generating .env.example file from current configuration...")

	content := generateEnvExampleContent(cmd)

	if err := os.WriteFile(envExampleFile, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envExampleFile, err)
	}

	fmt.Println("✅ Successfully generated .env.example file")
	return nil
}

func generateEnvExampleContent(cmd *cobra.Command) string {
	var content strings.Builder

	content.WriteString("# =============================================================================\n")
	content.WriteString("# agencysite Configuration\n")
	content.WriteString("# =============================================================================\n")
	content.WriteString("#\n")
	content.WriteString("# Copy this file to .env and update with your values\n")
	content.WriteString("# All environment variables have CLI flag equivalents (use --help to see them)\n")
	content.WriteString("#\n")
	fmt.Fprintf(&content, "# Format: %s_<SETTING>=value\n", envPrefix)
	content.WriteString("# CLI equivalent: --<setting>\n")
	content.WriteString("#\n\n")

	for _, section := range envSections {
		generateSection(&content, cmd, section)
	}

	return content.String()
}

func generateSection(content *strings.Builder, cmd *cobra.Command, section envSection) {
	content.WriteString("# -----------------------------------------------------------------------------\n")
	fmt.Fprintf(content, "# %s\n", section.title)
	content.WriteString("# -----------------------------------------------------------------------------\n")

	for _, flag := range section.flags {
		def := getDefaultValueString(cmd, flag.name)
		value := flag.example
		if value == "" {
			value = strings.Trim(def, "[]")
		}

		line := fmt.Sprintf("%s=%s", flagToEnvVar(flag.name), value)
		if flag.comment != "" {
			line = fmt.Sprintf("%-48s # %s (default: %s)", line, flag.comment, def)
		}
		content.WriteString(line + "\n")
	}
	content.WriteString("\n")
}

func flagToEnvVar(flagName string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func getDefaultValueString(cmd *cobra.Command, flagName string) string {
	if f := cmd.PersistentFlags().Lookup(flagName); f != nil {
		return f.DefValue
	}
	return ""
}
