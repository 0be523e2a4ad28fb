package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg Config) {
	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using flags, environment, and defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Listen Address:   %s\n", cfg.Addr())
	fmt.Fprintf(out, "  Upstream Base URL: %s\n", orUnset(cfg.BaseURL()))
	fmt.Fprintf(out, "  Upstream API Key: %s\n", maskSecret(cfg.APIKey()))
	fmt.Fprintf(out, "  Auth Token:       %s\n", maskSecret(cfg.AuthToken))
	fmt.Fprintf(out, "  Request Timeout:  %s\n", cfg.RequestTimeout())
	fmt.Fprintf(out, "  Log File:         %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
}

func orUnset(v string) string {
	if v == "" {
		return "(unset)"
	}
	return v
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(v string) string {
	if v == "" {
		return "(unset)"
	}
	if len(v) <= 4 {
		return "****"
	}
	return "****" + v[len(v)-4:]
}
