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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a status API address in format [host]:[port]
//	-d database DSN
//	-data-dir governed data directory
//	-quota storage quota in MB
//	-server-url sync server base URL
//	-probe-url network probe URL
//	-c/-config json file path with configs
//	-log-level log level
//	-log-file log file path
//	-request-timeout status API request timeout (e.g., "10s")
//	-push-timeout sync push timeout (e.g., "30s")
//	-batch-size items pushed per sync pass
//	-base-interval base sync interval (e.g., "5m")
//	-min-interval minimum sync interval (e.g., "1m")
//	-max-interval maximum sync interval (e.g., "10m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var dataDir string
	var quotaMB float64
	var serverURL string
	var probeURL string
	var jsonConfigPath string
	var logLevel string
	var logFile string
	var requestTimeout time.Duration
	var pushTimeout time.Duration
	var batchSize int
	var baseInterval, minInterval, maxInterval time.Duration

	flag.Var(&serverAddress, "a", "Status API net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&dataDir, "data-dir", "", "Governed data directory")
	flag.Float64Var(&quotaMB, "quota", 0, "Storage quota in MB")
	flag.StringVar(&serverURL, "server-url", "", "Sync server base URL")
	flag.StringVar(&probeURL, "probe-url", "", "Network probe URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Status API request timeout (e.g., 10s)")
	flag.DurationVar(&pushTimeout, "push-timeout", 0, "Sync push timeout (e.g., 30s)")
	flag.IntVar(&batchSize, "batch-size", 0, "Items pushed per sync pass")
	flag.DurationVar(&baseInterval, "base-interval", 0, "Base sync interval (e.g., 5m)")
	flag.DurationVar(&minInterval, "min-interval", 0, "Minimum sync interval (e.g., 1m)")
	flag.DurationVar(&maxInterval, "max-interval", 0, "Maximum sync interval (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		Logger: Logger{
			Level: logLevel,
			File:  logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				DataDir: dataDir,
				QuotaMB: quotaMB,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			ProbeURL:       probeURL,
			RequestTimeout: pushTimeout,
		},
		Workers: Workers{
			BatchSize: batchSize,
		},
		Interval: Interval{
			BaseSyncInterval: baseInterval,
			MinSyncInterval:  minInterval,
			MaxSyncInterval:  maxInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
