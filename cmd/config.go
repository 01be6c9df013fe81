package cmd

type Config struct {
	HTTPPort                       string
	DBHost                         string
	DBPort                         string
	DBUser                         string
	DBPassword                     string
	DBName                         string
	DBSslMode                      string
	KafkaHost                      string
	KafkaAvailabilityRequestsTopic string
	FulfilmentAPIURL               string
	FulfilmentAPIKey               string
	SchedulingHorizonDays          string
	PendingReminderHours           string
}
