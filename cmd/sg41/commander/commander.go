package commander

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/sg41/cmd/sg41/build"
	"github.com/sergeii/sg41/cmd/sg41/offline"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error" help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,stderr,json" help:"Specifies the format for log output"`   // nolint:lll

	RedisURL string `default:"redis://localhost:6379" help:"Defines the Redis URL connection"`

	ExporterHTTPListenAddress   string        `default:":9000"    help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPPath            string        `default:"/metrics" help:"Sets the path the Prometheus exporter serves metrics on"`                             // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"       help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"       help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"      help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll

	KeyboardShift string        `default:"JJ"  help:"Sets the letters typed to switch the keyboard between letters and figures"` // nolint:lll
	KeyCacheTTL   time.Duration `default:"5m"  help:"Sets how long a used key is kept in memory, 0 disables the cache"`          // nolint:lll

	JournalSize  int `default:"1000" help:"Sets how many processed messages are kept in the journal, 0 keeps all of them"` // nolint:lll
	JournalLimit int `default:"100"  help:"Limits how many journaled messages can be listed at once"`                      // nolint:lll

	WheelsetWorkers int           `default:"0"   help:"Sets how many goroutines a wheelsetting search runs on, 0 uses every CPU"` // nolint:lll
	WheelsetTimeout time.Duration `default:"30s" help:"Aborts wheelsetting searches that take longer than this"`                 // nolint:lll
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals

	Version  VersionCmd          `cmd:"" help:"Display the app version and exit"`
	Encrypt  offline.EncryptCmd  `cmd:"" help:"Encrypt text with the given cam patterns, no service required"`
	Decrypt  offline.DecryptCmd  `cmd:"" help:"Decrypt text with the given cam patterns, no service required"`
	Keygen   offline.KeygenCmd   `cmd:"" help:"Print random cam patterns for the six wheels"`
	Wheelset offline.WheelsetCmd `cmd:"" help:"Recover the indicator of a message from known printer offsets or a crib"`
	Run      RunCmd              `cmd:""`
}
