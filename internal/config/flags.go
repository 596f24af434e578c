package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by all binaries.
//
// Flags:
//
//	-a stub backend address in format [host]:[port]
//	-endpoint backend endpoint URL
//	-proxy CORS proxy prefix
//	-request-timeout outbound request timeout (e.g., "30s")
//	-refresh-timeout credential refresh timeout (e.g., "30s")
//	-d local database DSN
//	-log-file client log file
//	-token-sign-key stub token signing key
//	-token-issuer stub token issuer
//	-token-duration stub token duration (e.g., "1h")
//	-allowed-origins comma separated CORS origins for the stub
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bathroompass", flag.ContinueOnError)

	var stubAddress NetAddress
	var endpoint, proxyURL string
	var requestTimeout, refreshTimeout time.Duration
	var databaseDSN, logFile string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var allowedOrigins string
	var jsonConfigPath string

	fs.Var(&stubAddress, "a", "Stub backend address host:port")
	fs.StringVar(&endpoint, "endpoint", "", "Backend endpoint URL")
	fs.StringVar(&proxyURL, "proxy", "", "CORS proxy prefix")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&refreshTimeout, "refresh-timeout", 0, "Credential refresh timeout (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Stub token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Stub token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Stub token duration (e.g., 1h)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			Endpoint:       endpoint,
			ProxyURL:       proxyURL,
			RequestTimeout: requestTimeout,
			RefreshTimeout: refreshTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Stub: Stub{
			HTTPAddress:    stubAddress.String(),
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			AllowedOrigins: splitList(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
