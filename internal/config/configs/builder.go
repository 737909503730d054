package configs

// Builder tunes the conversational campaign builder.
type Builder struct {
	// ScheduleStep asks for start date and duration before the name.
	ScheduleStep bool `env:"SCHEDULE_ENABLED" envDefault:"false"`
	// InitialStatus is the status of campaigns created by the builder and
	// the campaign API when none is given.
	InitialStatus string `env:"INITIAL_STATUS" envDefault:"draft"`
	// SimulateMetrics attaches synthesized performance metrics to new
	// campaigns.
	SimulateMetrics bool `env:"SIMULATE_METRICS" envDefault:"true"`
}
