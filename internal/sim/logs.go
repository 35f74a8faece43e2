package sim

import "strings"

// MaxVisibleLogs is how many entries the feed keeps on screen.
const MaxVisibleLogs = 8

const logChance = 0.7 // a draw above this appends a log entry

// Severity classifies a log entry.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Label returns the uppercase tag shown in the feed.
func (s Severity) Label() string {
	return strings.ToUpper(s.String())
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LogEntry is one line in the rolling log feed.
type LogEntry struct {
	Time     string   `json:"time" yaml:"time"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

type logTemplate struct {
	severity Severity
	message  string
}

var logCatalog = []logTemplate{
	{SeverityInfo, "Connection established from 192.168.1.x"},
	{SeverityInfo, "Database query completed in 23ms"},
	{SeverityWarning, "High memory usage detected on srv-04"},
	{SeverityInfo, "SSL certificate renewed successfully"},
	{SeverityError, "Connection timeout to srv-06"},
	{SeverityInfo, "Cache cleared, 1.2GB freed"},
	{SeverityWarning, "Disk usage above 80% on EU-Central"},
	{SeverityInfo, "Backup completed successfully"},
}

// LogCatalogSize is the number of canned log messages.
func LogCatalogSize() int {
	return len(logCatalog)
}

// CatalogLog builds the i-th canned entry stamped with the given time.
func CatalogLog(i int, at string) LogEntry {
	t := logCatalog[i%len(logCatalog)]
	return LogEntry{Time: at, Severity: t.severity, Message: t.message}
}

// LogFeed is the visible log list, most recent first, plus a counter of
// every entry ever added.
type LogFeed struct {
	Entries []LogEntry `json:"entries" yaml:"entries"`
	Total   int        `json:"total" yaml:"total"`
}

// Add puts e at the front of the feed and evicts past MaxVisibleLogs.
func (f *LogFeed) Add(e LogEntry) {
	entries := make([]LogEntry, 0, min(len(f.Entries)+1, MaxVisibleLogs))
	entries = append(entries, e)
	for _, old := range f.Entries {
		if len(entries) == MaxVisibleLogs {
			break
		}
		entries = append(entries, old)
	}
	f.Entries = entries
	f.Total++
}

func (f LogFeed) clone() LogFeed {
	if f.Entries == nil {
		return f
	}
	entries := make([]LogEntry, len(f.Entries))
	copy(entries, f.Entries)
	return LogFeed{Entries: entries, Total: f.Total}
}
