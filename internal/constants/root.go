package constants

const (
	AppName            = "nightslot"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/nightslot"
	DefaultConfigPath  = "~/.config/nightslot/config.yaml"
	DefaultStatePath   = "~/.config/nightslot/nightslot.db"
	Version            = "v0.3.0"

	// DateFormat is the date key format used for allocations and date pickers (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// HourFormat renders an hour slot label (HH:00)
	HourFormat = "%02d:00"

	// Display layouts (en-US)
	FullDateLayout      = "Monday, January 2, 2006"
	DateNoWeekdayLayout = "January 2, 2006"
	DayMonthLayout      = "Jan 2"
	MonthYearLayout     = "January 2006"

	// Night window: 19:00-23:00 then 00:00-07:00
	EveningStartHour = 19
	EveningEndHour   = 23
	MorningEndHour   = 7
	SlotsPerNight    = 13

	// MaxDayDots caps the per-day indicator dots in the month view
	MaxDayDots = 3

	// ActivityIDPrefix prefixes generated activity ids (activity-N)
	ActivityIDPrefix = "activity-"

	// SnapshotKey is the key the state snapshot is stored under
	SnapshotKey = "nightslot.state"

	// Log file defaults
	DefaultLogLevel      = "warn"
	DefaultLogMaxSizeMB  = 5
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
	LogDirName           = "logs"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "nightslot-"

	// DBConnectionEnv names the environment variable holding a PostgreSQL connection string
	DBConnectionEnv = "NIGHTSLOT_DB_CONNECTION"

	// ExportDefaultDays is the default range of days exported to iCalendar
	ExportDefaultDays = 31

	// ExportProductID identifies nightslot in generated iCalendar documents
	ExportProductID = "-//julianstephens//nightslot//EN"
)
