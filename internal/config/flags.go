package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// URLList collects a repeatable string flag.
// It implements the flag.Value interface.
type URLList []string

// String joins the collected values with commas.
func (l *URLList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends a non-empty value.
func (l *URLList) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("empty url")
	}
	*l = append(*l, s)
	return nil
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-url paste URL, may be repeated
//	-key / -id base-58 key and paste ID of a paste on -base-url
//	-base-url paste service base URL
//	-o / -output-dir directory for saved attachments
//	-backend envelope source: http or file
//	-envelope-dir directory of saved envelopes for the file backend
//	-d history database path
//	-c / -config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retry-count retries for failed requests
//	-concurrency number of pastes processed in parallel
//	-max-inflate-size decompressed size cap in bytes
//	-log-level zerolog level
//	-from-clipboard read a paste URL from the clipboard
//	-force ignore the download history
//	-history print the download history and exit
//	-version print build information and exit
//
// The second result names the flags given on the command line whose zero
// value must still override earlier layers.
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var cfg StructuredConfig
	var urls URLList

	fs.Var(&urls, "url", "Paste URL, may be repeated")
	fs.StringVar(&cfg.Input.Key, "key", "", "Base-58 paste key")
	fs.StringVar(&cfg.Input.PasteID, "id", "", "Paste ID")
	fs.StringVar(&cfg.Adapter.BaseURL, "base-url", "", "Paste service base URL")
	fs.StringVar(&cfg.Storage.OutputDir, "o", "", "Output directory")
	fs.StringVar(&cfg.Storage.OutputDir, "output-dir", "", "Output directory (alias)")
	fs.StringVar(&cfg.Adapter.Backend, "backend", "", "Envelope source: http or file")
	fs.StringVar(&cfg.Adapter.EnvelopeDir, "envelope-dir", "", "Directory of saved envelopes")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "History database path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Adapter.RetryCount, "retry-count", 0, "Retries for failed requests")
	fs.IntVar(&cfg.Workers.Concurrency, "concurrency", 0, "Pastes processed in parallel")
	fs.Int64Var(&cfg.App.MaxInflateSize, "max-inflate-size", 0, "Decompressed size cap in bytes")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.Input.FromClipboard, "from-clipboard", false, "Read a paste URL from the clipboard")
	fs.BoolVar(&cfg.Input.Force, "force", false, "Ignore the download history")
	fs.BoolVar(&cfg.Input.ShowHistory, "history", false, "Print the download history and exit")
	fs.BoolVar(&cfg.Input.ShowVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var explicit []string
	fs.Visit(func(f *flag.Flag) {
		if _, ok := lookupExplicitSetting(f.Name); ok {
			explicit = append(explicit, f.Name)
		}
	})

	// bare arguments are treated as paste URLs
	for _, arg := range fs.Args() {
		if err := urls.Set(arg); err != nil {
			return nil, nil, fmt.Errorf("error parsing flags: %w", err)
		}
	}
	cfg.Input.URLs = urls

	return &cfg, explicit, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "decryptor"
	}
	return os.Args[0]
}
