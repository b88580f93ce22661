package helpers

import (
	"os"

	"github.com/convox/logger"
	"github.com/stvp/rollbar"
)

func init() {
	rollbar.Token = os.Getenv("ROLLBAR_TOKEN")
	rollbar.Environment = CoalesceString(os.Getenv("REFSORT_ENVIRONMENT"), "development")
}

// Error logs err and reports it to rollbar when a token is configured.
func Error(log *logger.Logger, err error) {
	if err == nil {
		return
	}

	if log != nil {
		log.Error(err)
	}

	if rollbar.Token != "" {
		rollbar.Error(rollbar.ERR, err, &rollbar.Field{Name: "space", Data: os.Getenv("CONTENTFUL_SPACE_ID")})
	}
}
