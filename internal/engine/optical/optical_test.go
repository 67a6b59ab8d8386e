package optical

import (
	"testing"

	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/model"
)

const cmd = "display transceiver diagnosis interface\n"

func power(t *testing.T, p *float64, want float64) {
	t.Helper()
	if p == nil {
		t.Fatalf("expected %v dBm, got nil", want)
	}
	if *p != want {
		t.Fatalf("expected %v dBm, got %v", want, *p)
	}
}

func TestH3CTableRowWithPlaceholder(t *testing.T) {
	text := cmd + "GigabitEthernet0/1  TX: -3.2dBm  RX: N/A\n"
	readings := Extract(text, profile.H3C, nil)

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	r := readings[0]
	if r.Port != "GigabitEthernet0/1" {
		t.Fatalf("expected port GigabitEthernet0/1, got %q", r.Port)
	}
	power(t, r.TxPowerDBm, -3.2)
	if r.RxPowerDBm != nil {
		t.Fatalf("expected nil RX for placeholder, got %v", *r.RxPowerDBm)
	}
}

func TestNoTransceiverSection(t *testing.T) {
	text := "display version\nHuawei VRP software\nGigabitEthernet0/1 is up\n"
	if readings := Extract(text, profile.Huawei, nil); len(readings) != 0 {
		t.Fatalf("expected no readings without a transceiver command, got %d", len(readings))
	}
}

func TestOrderPreserved(t *testing.T) {
	text := cmd +
		"GigabitEthernet1/0/3 transceiver diagnostic information:\n" +
		"  Current TX Power (dBm)  : -1.5\n" +
		"  Current RX Power (dBm)  : -4.2\n" +
		"GigabitEthernet1/0/1 transceiver diagnostic information:\n" +
		"  Current TX Power (dBm)  : -2.0\n" +
		"GigabitEthernet1/0/2 transceiver diagnostic information:\n" +
		"  Current RX Power (dBm)  : -7.9\n"
	readings := Extract(text, profile.Huawei, nil)

	wantPorts := []string{"GigabitEthernet1/0/3", "GigabitEthernet1/0/1", "GigabitEthernet1/0/2"}
	if len(readings) != len(wantPorts) {
		t.Fatalf("expected %d readings, got %d", len(wantPorts), len(readings))
	}
	for i, want := range wantPorts {
		if readings[i].Port != want {
			t.Fatalf("reading %d: expected port %q, got %q", i, want, readings[i].Port)
		}
	}
	// Partial readings keep the missing side nil.
	if readings[1].RxPowerDBm != nil {
		t.Fatal("expected nil RX on TX-only port")
	}
	if readings[2].TxPowerDBm != nil {
		t.Fatal("expected nil TX on RX-only port")
	}
	power(t, readings[2].RxPowerDBm, -7.9)
}

func TestStatusMarkers(t *testing.T) {
	text := cmd +
		"GigabitEthernet1/0/10 transceiver diagnostic information:\n" +
		"  The transceiver is absent.\n" +
		"GigabitEthernet1/0/11 transceiver diagnostic information:\n" +
		"  Error: This command is valid only on optical interface.\n" +
		"GigabitEthernet1/0/12 transceiver diagnostic information:\n" +
		"  Transfer Distance(m) : 100(copper)\n"
	readings := Extract(text, profile.H3C, nil)

	if len(readings) != 3 {
		t.Fatalf("expected 3 readings, got %d", len(readings))
	}
	wantStatus := []string{model.StatusAbsent, model.StatusNonOptical, model.StatusCopper}
	for i, want := range wantStatus {
		if readings[i].Status != want {
			t.Fatalf("reading %d: expected status %q, got %q", i, want, readings[i].Status)
		}
		if readings[i].TxPowerDBm != nil || readings[i].RxPowerDBm != nil {
			t.Fatalf("reading %d: expected empty TX/RX for marked port", i)
		}
	}
}

func TestMultiColumnTable(t *testing.T) {
	text := cmd +
		"XGE1/0/49 transceiver diagnostic information:\n" +
		"  Current diagnostic parameters:\n" +
		"    Temp.(C)   Voltage(V)  Bias(mA)  RX power(dBm)  TX power(dBm)\n" +
		"    28         3.31        5.20      -6.80          -2.95\n"
	readings := Extract(text, profile.H3C, nil)

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	power(t, readings[0].TxPowerDBm, -2.95)
	power(t, readings[0].RxPowerDBm, -6.8)
}

func TestAlarmThresholdsIgnored(t *testing.T) {
	text := cmd +
		"GigabitEthernet1/0/1 transceiver diagnostic information:\n" +
		"  Current diagnostic parameters:\n" +
		"    Current RX Power (dBm) : -5.42\n" +
		"    Current TX Power (dBm) : -2.10\n" +
		"  Alarm thresholds:\n" +
		"    RX Power high : 1.00\n" +
		"    TX Power high : 5.00\n"
	readings := Extract(text, profile.Huawei, nil)

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	power(t, readings[0].TxPowerDBm, -2.1)
	power(t, readings[0].RxPowerDBm, -5.42)
}

func TestOutOfRangeValueIgnored(t *testing.T) {
	text := cmd +
		"GigabitEthernet1/0/1 transceiver diagnostic information:\n" +
		"  Current TX Power (dBm) : -53.1\n" +
		"  Current RX Power (dBm) : -6.0\n"
	readings := Extract(text, profile.Huawei, nil)

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	if readings[0].TxPowerDBm != nil {
		t.Fatalf("expected out-of-range TX dropped, got %v", *readings[0].TxPowerDBm)
	}
	power(t, readings[0].RxPowerDBm, -6)
}

func TestPortStatusLine(t *testing.T) {
	text := cmd +
		"GigabitEthernet1/0/1 transceiver diagnostic information:\n" +
		"  TxPower: -2.5  RxPower: -5.0  status normal\n"
	readings := Extract(text, profile.Huawei, nil)

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	if readings[0].Status != model.StatusNormal {
		t.Fatalf("expected status normal, got %q", readings[0].Status)
	}
}

func TestCommandEchoWithInterfaceNotDuplicated(t *testing.T) {
	text := "display transceiver diagnosis interface GigabitEthernet1/0/5\n" +
		"GigabitEthernet1/0/5 transceiver diagnostic information:\n" +
		"  Current TX Power (dBm) : -2.0\n"
	readings := Extract(text, profile.Huawei, nil)

	if len(readings) != 1 {
		t.Fatalf("expected command echo and block header to merge into 1 reading, got %d", len(readings))
	}
	power(t, readings[0].TxPowerDBm, -2)
}

func TestVerboseCommandStartsSection(t *testing.T) {
	text := "display transceiver verbose\n" +
		"GigabitEthernet1/0/7 transceiver information:\n" +
		"  TX power(dBm) -1.25\n" +
		"  RX power(dBm) -9.50\n"
	readings := Extract(text, profile.H3C, nil)

	if len(readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(readings))
	}
	power(t, readings[0].TxPowerDBm, -1.25)
	power(t, readings[0].RxPowerDBm, -9.5)
}
