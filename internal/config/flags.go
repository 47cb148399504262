package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses all configuration flags from args (normally
// os.Args[1:]).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-endpoint shadow store base URL used by devices
//	-device-id device identifier
//	-device-key device symmetric key
//	-d local snapshot database DSN
//	-upload-dir directory where the server stores uploaded files
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-message-timeout telemetry send timeout
//	-state-timeout GetState timeout
//	-resync-interval periodic full-state fetch interval
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var endpoint, deviceID, deviceKey string
	var databaseDSN, uploadDir string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, messageTimeout, stateTimeout, resyncInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet("shadow-sync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&endpoint, "endpoint", "", "Shadow store address")
	fs.StringVar(&deviceID, "device-id", "", "Device identifier")
	fs.StringVar(&deviceKey, "device-key", "", "Device key")
	fs.StringVar(&databaseDSN, "d", "", "Snapshot database DSN")
	fs.StringVar(&uploadDir, "upload-dir", "", "Upload directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&messageTimeout, "message-timeout", 0, "Telemetry send timeout")
	fs.DurationVar(&stateTimeout, "state-timeout", 0, "GetState timeout")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Full state resync interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Device: Device{
			ID:  deviceID,
			Key: deviceKey,
		},
		Endpoint: Endpoint{
			Address:        endpoint,
			RequestTimeout: requestTimeout,
			MessageTimeout: messageTimeout,
			StateTimeout:   stateTimeout,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{UploadDir: uploadDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{ResyncInterval: resyncInterval},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
