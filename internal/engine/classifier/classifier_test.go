package classifier

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/junyi-w/patrol/internal/engine/profile"
	"github.com/junyi-w/patrol/internal/model"
)

func TestClassify(t *testing.T) {
	c := New(profile.All(), nil)

	tests := []struct {
		name string
		text string
		want model.Vendor
	}{
		{
			name: "huawei banner",
			text: "Copyright (C) 2012-2018 Huawei Technologies Co., Ltd.\nVRP (R) software",
			want: model.VendorHuawei,
		},
		{
			name: "h3c banner",
			text: "* Copyright (c) 2004-2021 New H3C Technologies Co., Ltd. *",
			want: model.VendorH3C,
		},
		{
			name: "case insensitive",
			text: "  vrp software by HUAWEI  ",
			want: model.VendorHuawei,
		},
		{
			name: "signature mid line with noise",
			text: "\x00garbage\nsome prefix h3c suffix noise",
			want: model.VendorH3C,
		},
		{
			name: "no signature",
			text: "Cisco IOS Software, Version 15.2\n",
			want: model.VendorUnknown,
		},
		{
			name: "empty input",
			text: "",
			want: model.VendorUnknown,
		},
		{
			name: "first line wins on concatenated logs",
			text: "New H3C Technologies\n...\nHuawei Technologies\n",
			want: model.VendorH3C,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyAmbiguityTraced(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := New(profile.All(), log)

	got := c.Classify("h3c line first\nhuawei line second\n")
	if got != model.VendorH3C {
		t.Fatalf("expected first signature to win, got %v", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("multiple vendor signatures")) {
		t.Fatalf("expected ambiguity trace in debug output, got: %s", buf.String())
	}
}

func TestClassifySameLineProfileOrder(t *testing.T) {
	c := New(profile.All(), nil)
	// Both signatures on one line: profile scan order decides.
	if got := c.Classify("huawei and h3c in one line"); got != model.VendorHuawei {
		t.Fatalf("expected Huawei on same-line tie, got %v", got)
	}
}
