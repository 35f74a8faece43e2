package sim

// ServerStatus is the health state shown on a server card.
type ServerStatus int

const (
	ServerOnline ServerStatus = iota
	ServerWarning
	ServerOffline
)

// WarningLoad is the load above which a live server is flagged.
const WarningLoad = 85

// String returns the status name used for styling and JSON.
func (s ServerStatus) String() string {
	switch s {
	case ServerOnline:
		return "online"
	case ServerWarning:
		return "warning"
	case ServerOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ServerStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Server is one entry in the server-status grid.
type Server struct {
	ID     string       `json:"id" yaml:"id"`
	Name   string       `json:"name" yaml:"name"`
	Status ServerStatus `json:"status" yaml:"status"`
	Load   int          `json:"load" yaml:"load"`
}

// DefaultServers returns the fixed fleet shown by the dashboard.
// The set never grows or shrinks; srv-06 starts offline and stays that way.
func DefaultServers() []Server {
	return []Server{
		{ID: "srv-01", Name: "US-East-1", Status: ServerOnline, Load: 45},
		{ID: "srv-02", Name: "US-West-1", Status: ServerOnline, Load: 62},
		{ID: "srv-03", Name: "EU-Central", Status: ServerOnline, Load: 38},
		{ID: "srv-04", Name: "Asia-Pacific", Status: ServerWarning, Load: 85},
		{ID: "srv-05", Name: "SA-East", Status: ServerOnline, Load: 29},
		{ID: "srv-06", Name: "AU-Sydney", Status: ServerOffline, Load: 0},
	}
}

// step moves a live server's load by -5..+4 and re-derives its status.
// Offline servers are frozen.
func (s *Server) step(src Source) {
	if s.Status == ServerOffline {
		return
	}
	s.Load += src.IntN(10) - 5
	s.Load = min(100, max(0, s.Load))
	s.Status = deriveStatus(s.Status, s.Load)
}

// deriveStatus maps load to status. A load of exactly zero keeps the
// current status, and offline is never produced from load.
func deriveStatus(current ServerStatus, load int) ServerStatus {
	switch {
	case load > WarningLoad:
		return ServerWarning
	case load > 0:
		return ServerOnline
	default:
		return current
	}
}
