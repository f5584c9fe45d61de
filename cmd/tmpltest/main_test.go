package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"etaus/internal/biz"
	"etaus/pkg/etaus"

	"github.com/urfave/cli"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in      string
		want    etaus.Seed
		wantErr bool
	}{
		{"1,2,3", etaus.Seed{1, 2, 3}, false},
		{"0x75bcd15, 0x75bcd26 ,0x75bcd34", etaus.DefaultSeed, false},
		{"4294967295,8,16", etaus.Seed{0xffffffff, 8, 16}, false},
		{"1,2", etaus.Seed{}, true},
		{"1,2,x", etaus.Seed{}, true},
		{"1,2,4294967296", etaus.Seed{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSeed(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseSeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintSeed(t *testing.T) {
	var buf bytes.Buffer
	printSeed(&buf, etaus.DefaultSeed)
	if want := "Seed 1 75bcd15\nSeed 2 75bcd26\nSeed 3 75bcd34\n"; buf.String() != want {
		t.Errorf("printSeed() = %q", buf.String())
	}
}

func TestPrintReport(t *testing.T) {
	report, err := biz.RunTemplate(context.Background(), etaus.DefaultSeed,
		biz.TemplateConfig{Size: 64, Samples: 100000, Alpha: 0.05})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	printReport(&buf, report)
	out := buf.String()
	for _, want := range []string{
		"    0       50042      50000.0000       42.0000      0.0353\n",
		"Chi square    16.0016\n",
		"Degrees of freedom   12\n",
		": PASS\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestPrintReport_WrapAround(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &biz.TemplateReport{WrapAround: true, WrapSample: 7})
	if !strings.HasPrefix(buf.String(), "Sample # 7\n") {
		t.Errorf("printReport() = %q", buf.String())
	}
}

func TestParseFlags(t *testing.T) {
	ref := etaus.Seed{1, 2, 3}
	tests := []struct {
		name         string
		args         []string
		wantSize     int
		wantReseedAt int
		wantReseed   *etaus.Seed
		wantErr      bool
	}{
		{"defaults", nil, 1024, 0, nil, false},
		{"reference", []string{"--reference"}, 1024, 500000, &ref, false},
		{"reference with explicit point", []string{"--reference", "--reseed-at", "20"}, 1024, 20, &ref, false},
		{"explicit reseed", []string{"--size", "64", "--reseed-at", "7", "--reseed", "4,5,6"}, 64, 7, &etaus.Seed{4, 5, 6}, false},
		{"bad reseed", []string{"--reference", "--reseed", "4,5"}, 0, 0, nil, true},
		{"bad seed", []string{"--seed", "x"}, 0, 0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				cfg biz.TemplateConfig
				err error
			)
			app := newApp(io.Discard)
			app.Action = func(c *cli.Context) error {
				_, cfg, err = parseFlags(c)
				return nil
			}
			if runErr := app.Run(append([]string{"tmpltest", "--seed", "1,2,3"}, tt.args...)); runErr != nil {
				t.Fatal(runErr)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Size != tt.wantSize || cfg.ReseedAt != tt.wantReseedAt {
				t.Errorf("cfg = %+v", cfg)
			}
			if (cfg.ReseedSeed == nil) != (tt.wantReseed == nil) ||
				(cfg.ReseedSeed != nil && *cfg.ReseedSeed != *tt.wantReseed) {
				t.Errorf("ReseedSeed = %v, want %v", cfg.ReseedSeed, tt.wantReseed)
			}
		})
	}
}

func TestApp_Run(t *testing.T) {
	var buf bytes.Buffer
	err := newApp(&buf).Run([]string{"tmpltest", "--size", "64", "--samples", "100000",
		"--seed", "0x75bcd15,0x75bcd26,0x75bcd34"})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Seed 1 75bcd15\n") || !strings.Contains(out, "Degrees of freedom   12\n") {
		t.Errorf("output = %s", out)
	}

	// 重新播种为全零流后卡方远超临界值
	buf.Reset()
	err = newApp(&buf).Run([]string{"tmpltest", "--size", "64", "--samples", "100000",
		"--seed", "0x75bcd15,0x75bcd26,0x75bcd34", "--reseed-at", "50000"})
	if !errors.Is(err, errTemplateFailed) {
		t.Errorf("err = %v, want %v", err, errTemplateFailed)
	}
	if !strings.Contains(buf.String(), ": FAIL\n") {
		t.Errorf("output = %s", buf.String())
	}
}
