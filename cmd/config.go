package cmd

type Config struct {
	HTTPPort               string
	Storage                string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	StaleOrderTTL          string
}
