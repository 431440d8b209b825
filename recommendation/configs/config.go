package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ServiceConfig struct {
	API              apiConfig              `yaml:"api"`
	GRPC             grpcConfig             `yaml:"grpc"`
	TLS              TLSConfig              `yaml:"tls"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery"`
	MessengerConfig  MessengerConfig        `yaml:"messenger"`
	DatabaseConfig   DatabaseConfig         `yaml:"database"`
	Jaeger           JaegerConfig           `yaml:"jaeger"`
	Prometheus       PrometheusConfig       `yaml:"prometheus"`
}

type apiConfig struct {
	Port int `yaml:"port"`
	// TestMode exposes POST /test/reset.
	TestMode    bool            `yaml:"testMode"`
	CORSOrigins []string        `yaml:"corsOrigins"`
	RateLimit   RateLimitConfig `yaml:"rateLimit"`
}

type RateLimitConfig struct {
	Limit int `yaml:"limit"`
	Burst int `yaml:"burst"`
}

type grpcConfig struct {
	Port int `yaml:"port"`
}

// TLSConfig points to the gRPC certificate pair. Empty paths mean plaintext.
type TLSConfig struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
	// Hostname is the host advertised to the registry.
	Hostname string `yaml:"hostname"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}

type MessengerConfig struct {
	Kafka KafkaConfig `yaml:"kafka"`
}

type KafkaConfig struct {
	Address string `yaml:"address"`
	Topic   string `yaml:"topic"`
	GroupID string `yaml:"groupId"`
}

type DatabaseConfig struct {
	// Driver is either "memory" or "mysql".
	Driver string      `yaml:"driver"`
	Mysql  MysqlConfig `yaml:"mysql"`
}

type MysqlConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"password"`
	Name string `yaml:"db_name"`
}

type JaegerConfig struct {
	URL string `yaml:"url"`
}

type PrometheusConfig struct {
	MetricsPort int `yaml:"metricsPort"`
}

// Default returns the configuration used for keys absent from the file.
func Default() ServiceConfig {
	return ServiceConfig{
		API: apiConfig{
			Port:        5000,
			CORSOrigins: []string{"http://localhost:3000"},
			RateLimit:   RateLimitConfig{Limit: 100, Burst: 50},
		},
		GRPC:             grpcConfig{Port: 8082},
		ServiceDiscovery: serviceDiscoveryConfig{Hostname: "localhost"},
		MessengerConfig: MessengerConfig{Kafka: KafkaConfig{
			Topic:   "votes",
			GroupID: "recommendation",
		}},
		DatabaseConfig: DatabaseConfig{
			Driver: "memory",
			Mysql:  MysqlConfig{Host: "localhost", Port: 3306, Name: "singmeasong"},
		},
		Prometheus: PrometheusConfig{MetricsPort: 8091},
	}
}

// Load decodes the YAML file at path on top of Default.
func Load(path string) (ServiceConfig, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c ServiceConfig) validate() error {
	switch c.DatabaseConfig.Driver {
	case "memory", "mysql":
	default:
		return fmt.Errorf("unknown database driver %q", c.DatabaseConfig.Driver)
	}
	if c.API.Port <= 0 || c.GRPC.Port <= 0 {
		return fmt.Errorf("api and grpc ports must be positive")
	}
	if (c.TLS.Cert == "") != (c.TLS.Key == "") {
		return fmt.Errorf("tls cert and key must be set together")
	}
	return nil
}
