// Package version holds the gavel server's build metadata, reported at
// startup and on the health endpoint.
package version

// Version is bumped on each gavel release; Commit and BuildTime are meant to
// be stamped in via -ldflags.
const (
	Version   = "0.1.0"
	Commit    = ""
	BuildTime = ""
)

// Info is the JSON body served by GET /healthz.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
}

func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}
