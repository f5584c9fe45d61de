package service

import (
	"context"
	"net"
	"strings"
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	v1 "etaus/api/etaus/v1"
	"etaus/internal/biz"
	"etaus/pkg/etaus"
)

func newGRPCClient(t *testing.T, f *fixture) v1.GeneratorClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1.RegisterGeneratorServer(srv, f.svc)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return v1.NewGeneratorClient(conn)
}

func TestGeneratorService_GRPCSession(t *testing.T) {
	f := newFixture()
	client := newGRPCClient(t, f)
	ctx := context.Background()

	created, err := client.CreateSession(ctx, &v1.CreateSessionRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if created.Id == "" || created.Seed[0] != etaus.DefaultSeed[0] {
		t.Errorf("created = %+v", created)
	}

	draw, err := client.DrawSession(ctx, &v1.DrawRequest{Id: created.Id, Kind: biz.DrawInt, Param: 10, Count: 4})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{0, 6, 7, 1}
	if draw.SessionId != created.Id || len(draw.Uints) != len(want) {
		t.Fatalf("draw = %+v", draw)
	}
	for i, w := range want {
		if draw.Uints[i] != w {
			t.Errorf("uints[%d] = %d, want %d", i, draw.Uints[i], w)
		}
	}

	frac, err := client.DrawSession(ctx, &v1.DrawRequest{Id: created.Id, Kind: biz.DrawFraction53, Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(frac.Floats) != 2 || frac.Uints != nil || frac.Floats[0] < 0 || frac.Floats[0] >= 1 {
		t.Errorf("fraction53 = %+v", frac)
	}

	st, err := client.GetSessionState(ctx, &v1.SessionRequest{Id: created.Id})
	if err != nil {
		t.Fatal(err)
	}
	if st.Draws != 6 || st.GetState().GetS1() == 0 {
		t.Errorf("state = %+v", st)
	}

	body, err := client.DumpTable(ctx, &v1.TableRequest{Id: created.Id, State: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(body.GetData()), "s1 msk fffffffe\n") {
		t.Errorf("dump = %q", body.GetData()[:32])
	}

	reseeded, err := client.ReseedSession(ctx, &v1.ReseedSessionRequest{Id: created.Id, Seed: []uint32{123456789, 123456806, 123456820}})
	if err != nil {
		t.Fatal(err)
	}
	if reseeded.Draws != 0 {
		t.Errorf("reseeded = %+v", reseeded)
	}

	if _, err := client.DeleteSession(ctx, &v1.SessionRequest{Id: created.Id}); err != nil {
		t.Fatal(err)
	}
	if _, err := client.GetSessionState(ctx, &v1.SessionRequest{Id: created.Id}); kerrors.Reason(err) != biz.ErrSessionNotFound.Reason {
		t.Errorf("err = %v, want SESSION_NOT_FOUND", err)
	}
}

func TestGeneratorService_GRPCErrors(t *testing.T) {
	f := newFixture()
	client := newGRPCClient(t, f)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		reason string
		code   int
	}{
		{
			name: "short seed",
			call: func() error {
				_, err := client.CreateSession(ctx, &v1.CreateSessionRequest{Seed: []uint32{1, 2}})
				return err
			},
			reason: errInvalidSeed.Reason,
			code:   400,
		},
		{
			name: "degenerate seed",
			call: func() error {
				_, err := client.CreateSession(ctx, &v1.CreateSessionRequest{Seed: []uint32{1, 2, 3}})
				return err
			},
			reason: biz.ErrSeedDegenerate.Reason,
			code:   400,
		},
		{
			name: "unknown session",
			call: func() error {
				_, err := client.ReseedSession(ctx, &v1.ReseedSessionRequest{Id: "missing", Phrase: "x"})
				return err
			},
			reason: biz.ErrSessionNotFound.Reason,
			code:   404,
		},
		{
			name: "unknown run",
			call: func() error {
				_, err := client.GetTemplateRun(ctx, &v1.GetTemplateRunRequest{Id: 99})
				return err
			},
			reason: biz.ErrRunNotFound.Reason,
			code:   404,
		},
		{
			name: "golden without seed",
			call: func() error {
				_, err := client.VerifyGolden(ctx, &v1.VerifyGoldenRequest{N: 4})
				return err
			},
			reason: errInvalidSeed.Reason,
			code:   400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if kerrors.Reason(err) != tt.reason || kerrors.Code(err) != tt.code {
				t.Errorf("err = %v, want %s (%d)", err, tt.reason, tt.code)
			}
		})
	}
}

func TestGeneratorService_GRPCTemplate(t *testing.T) {
	f := newFixture()
	client := newGRPCClient(t, f)
	ctx := context.Background()

	run, err := client.RunTemplate(ctx, &v1.TemplateRunRequest{Seed: []uint32{123456789, 123456806, 123456820}})
	if err != nil {
		t.Fatal(err)
	}
	if run.Id != 1 || run.Df != 12 || !run.Pass || len(run.Rows) != 13 || run.Matches[0] != 50042 {
		t.Errorf("run = %+v", run)
	}

	got, err := client.GetTemplateRun(ctx, &v1.GetTemplateRunRequest{Id: run.Id})
	if err != nil || got.Pvalue != run.Pvalue || len(got.Rows) != 13 {
		t.Errorf("GetTemplateRun() = %+v, %v", got, err)
	}

	list, err := client.ListTemplateRuns(ctx, &v1.ListTemplateRunsRequest{Limit: 5})
	if err != nil || len(list.Runs) != 1 || len(list.Runs[0].Rows) != 0 {
		t.Errorf("ListTemplateRuns() = %+v, %v", list, err)
	}

	job, err := client.EnqueueTemplateJob(ctx, &v1.TemplateRunRequest{Size: 16, Phrase: "grpc"})
	if err != nil || job.JobId != "1-0" || f.queue.jobs[0].Seed.Phrase != "grpc" {
		t.Errorf("EnqueueTemplateJob() = %+v, %v", job, err)
	}

	req := &v1.VerifyGoldenRequest{Seed: []uint32{123456789, 123456806, 123456820}, N: 3}
	first, err := client.VerifyGolden(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := client.VerifyGolden(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if first.Status != biz.GoldenRecorded || second.Status != biz.GoldenMatch || len(second.Values) != 3 || second.Values[0] != 0x0a1c747a {
		t.Errorf("first = %+v second = %+v", first, second)
	}
}
