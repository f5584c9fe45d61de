// tmpltest 模板匹配测试命令行工具
//
// 生成随机模板后逐位滑动比较样本窗口，统计匹配长度分布并做卡方检验。
//
//	tmpltest --size 1024 --samples 1000000
//	tmpltest --seed 0x75bcd15,0x75bcd26,0x75bcd34 --reseed-at 500000 --reseed 1,2,3
//	tmpltest --reference
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"etaus/internal/biz"
	"etaus/pkg/etaus"
	"etaus/pkg/random"

	"github.com/urfave/cli"
)

const (
	// referenceReseedAt 参考程序在第 500000 个样本处用 {1,2,3} 重新播种
	referenceReseedAt = 500000
	referenceReseed   = "1,2,3"
)

var errTemplateFailed = errors.New("template test failed")

var (
	sizeFlag     = cli.IntFlag{Name: "size", Value: 1024, Usage: "template size in bits"}
	samplesFlag  = cli.IntFlag{Name: "samples", Value: 1000000, Usage: "number of samples"}
	seedFlag     = cli.StringFlag{Name: "seed", Usage: "three comma separated seed words, random if empty"}
	phraseFlag   = cli.StringFlag{Name: "phrase", Usage: "derive the seed from a phrase"}
	reseedAtFlag = cli.IntFlag{Name: "reseed-at", Usage: "reseed before this sample (0 disables)"}
	reseedFlag   = cli.StringFlag{Name: "reseed", Value: referenceReseed, Usage: "seed words used at --reseed-at"}
	alphaFlag    = cli.Float64Flag{Name: "alpha", Value: 0.05, Usage: "significance level"}
	refFlag      = cli.BoolFlag{
		Name:  "reference",
		Usage: fmt.Sprintf("reseed with {%s} at sample %d like the reference harness", referenceReseed, referenceReseedAt),
	}
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		if !errors.Is(err, errTemplateFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "tmpltest"
	app.Usage = "template matching test for the etaus generator"
	app.HideVersion = true
	app.Writer = w
	app.Flags = []cli.Flag{
		sizeFlag, samplesFlag, seedFlag, phraseFlag, reseedAtFlag, reseedFlag, alphaFlag, refFlag,
	}
	app.Action = runTemplate
	return app
}

func runTemplate(c *cli.Context) error {
	seed, cfg, err := parseFlags(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := c.App.Writer
	printSeed(w, seed)
	report, err := biz.RunTemplate(ctx, seed, cfg)
	if err != nil {
		return err
	}
	printReport(w, report)
	if !report.Pass {
		return errTemplateFailed
	}
	return nil
}

// parseFlags 解析初始种子与测试参数。
// --reference 打开参考程序的重新播种，--reseed-at 显式给出时以它为准。
func parseFlags(c *cli.Context) (etaus.Seed, biz.TemplateConfig, error) {
	var seed etaus.Seed
	switch {
	case c.String(seedFlag.Name) != "":
		s, err := parseSeed(c.String(seedFlag.Name))
		if err != nil {
			return seed, biz.TemplateConfig{}, err
		}
		seed = s
	case c.String(phraseFlag.Name) != "":
		seed = random.FromPhrase(c.String(phraseFlag.Name))
	default:
		seed = random.NewXorShift64Star(uint64(time.Now().UnixNano())).Seed()
	}

	cfg := biz.TemplateConfig{
		Size:    c.Int(sizeFlag.Name),
		Samples: c.Int(samplesFlag.Name),
		Alpha:   c.Float64(alphaFlag.Name),
	}
	reseedAt := c.Int(reseedAtFlag.Name)
	if c.Bool(refFlag.Name) && !c.IsSet(reseedAtFlag.Name) {
		reseedAt = referenceReseedAt
	}
	if reseedAt > 0 {
		s, err := parseSeed(c.String(reseedFlag.Name))
		if err != nil {
			return seed, cfg, err
		}
		cfg.ReseedAt = reseedAt
		cfg.ReseedSeed = &s
	}
	return seed, cfg, nil
}

// parseSeed 解析逗号分隔的三个种子，支持 0x 前缀
func parseSeed(s string) (etaus.Seed, error) {
	var seed etaus.Seed
	parts := strings.Split(s, ",")
	if len(parts) != len(seed) {
		return seed, fmt.Errorf("seed %q: want 3 comma separated words", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return seed, fmt.Errorf("seed %q: %w", s, err)
		}
		seed[i] = uint32(v)
	}
	return seed, nil
}

func printSeed(w io.Writer, seed etaus.Seed) {
	for i, s := range seed {
		fmt.Fprintf(w, "Seed %d %x\n", i+1, s)
	}
}

func printReport(w io.Writer, r *biz.TemplateReport) {
	if r.WrapAround {
		fmt.Fprintf(w, "Sample # %d\n", r.WrapSample)
		fmt.Fprintln(w, "wrap-around: template matched the whole window")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "                     Template Test")
	fmt.Fprintln(w, "               etaus Random Number Generator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Matches    Actual        Expected    Difference    Chi Square")
	for _, row := range r.ChiSq.Rows {
		fmt.Fprintf(w, "%5d  %10.0f  %14.4f  %12.4f  %10.4f\n",
			row.Bin, row.Actual, row.Expected, row.Diff, row.ChiSq)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Chi square %10.4f\n", r.ChiSq.Stat)
	fmt.Fprintf(w, "Degrees of freedom %4d\n", r.ChiSq.DF)
	fmt.Fprintf(w, "P-value %.6f (alpha %.3f): %s\n", r.ChiSq.PValue, r.Alpha, verdict(r.Pass))
}

func verdict(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
