package model

// Vendor identifies which CLI dialect produced an inspection log.
type Vendor string

const (
	VendorHuawei  Vendor = "Huawei"
	VendorH3C     Vendor = "H3C"
	VendorUnknown Vendor = "Unknown"
)

// HardwareMetrics holds device-level utilization figures. Fields are nil when
// the corresponding pattern did not match; absence is distinct from zero.
type HardwareMetrics struct {
	CPUUsagePercent    *float64
	CPUMaxPercent      *float64
	MemoryUsagePercent *float64
	MemoryUsedKB       *int64
}

// Transceiver port statuses reported by diagnostic output.
const (
	StatusNormal       = "normal"
	StatusAbnormal     = "abnormal"
	StatusNonOptical   = "non-optical"
	StatusAbsent       = "absent"
	StatusNotSupported = "not-supported"
	StatusCopper       = "copper"
)

// OpticalReading is one physical port's transceiver diagnostic result.
// TX/RX are nil when the source printed a placeholder or no value at all,
// which usually means an unplugged or non-functioning transceiver.
type OpticalReading struct {
	Port       string
	TxPowerDBm *float64
	RxPowerDBm *float64
	Status     string // one of the Status constants, or "" when not reported
}

// DeviceRecord is the single structured output unit for one log file. The
// engine produces exactly one per RawLog, however little was extracted.
type DeviceRecord struct {
	SourceFile string
	Zone       Zone
	Vendor     Vendor
	Device     string
	Serial     string
	Hardware   HardwareMetrics
	Optical    []OpticalReading
	ReadErr    string // non-empty for files that could not be decoded
}
