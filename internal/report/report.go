package report

import "github.com/junyi-w/patrol/internal/model"

// Sink consumes assembled device records. Records arrive in input order and
// the sink owns them after Write returns.
type Sink interface {
	Write(rec model.DeviceRecord) error
	Close() error
}
