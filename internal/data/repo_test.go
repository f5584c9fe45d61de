package data

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"etaus/internal/biz"
	"etaus/pkg/chisq"
	"etaus/pkg/etaus"
)

func newMockDB(t *testing.T) (*gorm.DB, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	return db, sqlDB, mock
}

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

var runColumns = []string{
	"run_id", "size", "samples", "seed1", "seed2", "seed3", "reseed_at", "reseed_seed",
	"matches", "wrap_around", "wrap_sample", "chisq", "alpha", "pass", "elapsed_ms", "created_at",
}

func TestTemplateRepo_Save(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()
	repo := NewTemplateRepo(&Data{db: db}, testLogger)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "template_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"run_id"}).AddRow(9))
	mock.ExpectCommit()

	report := &biz.TemplateReport{
		Size:    8,
		Samples: 1000,
		Seed:    etaus.DefaultSeed,
		Matches: []int64{500, 250, 125, 62, 31, 16, 8, 4, 4},
		ChiSq:   chisq.Result{Stat: 1.2, DF: 5, Bins: 6, PValue: 0.94},
		Alpha:   0.05,
		Pass:    true,
	}
	if err := repo.Save(context.Background(), report); err != nil {
		t.Fatal(err)
	}
	if report.ID != 9 {
		t.Errorf("ID = %d, want 9", report.ID)
	}
	if report.CreatedAt.IsZero() {
		t.Error("CreatedAt not filled")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestTemplateRepo_Get(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()
	repo := NewTemplateRepo(&Data{db: db}, testLogger)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "template_runs" WHERE run_id = \$1`).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows(runColumns).AddRow(
			42, 64, 100000, 123456789, 123456806, 123456820, 50000, []byte("[1,2,3]"),
			[]byte("[50042,24954,12617]"), false, 0, []byte(`{"stat":16.00160875,"df":12,"bins":13,"pvalue":0.19,"rows":null}`),
			0.01, true, 812, created,
		))
	mock.ExpectQuery(`SELECT \* FROM "template_runs" WHERE run_id = \$1`).
		WithArgs(int64(43), 1).
		WillReturnRows(sqlmock.NewRows(runColumns))

	got, err := repo.Get(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 42 || got.Seed != etaus.DefaultSeed || got.ReseedSeed == nil || *got.ReseedSeed != (etaus.Seed{1, 2, 3}) ||
		len(got.Matches) != 3 || got.ChiSq.DF != 12 || got.Elapsed != 812*time.Millisecond || !got.CreatedAt.Equal(created) {
		t.Errorf("Get() = %+v", got)
	}

	if _, err := repo.Get(ctx, 43); !errors.Is(err, biz.ErrRunNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrRunNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestTemplateRepo_List(t *testing.T) {
	db, sqlDB, mock := newMockDB(t)
	defer sqlDB.Close()
	repo := NewTemplateRepo(&Data{db: db}, testLogger)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "template_runs" ORDER BY created_at DESC,\s*run_id DESC LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(runColumns).
			AddRow(5, 8, 10, 1, 2, 3, 0, nil, []byte("[5,5]"), false, 0, nil, 0.05, true, 1, now).
			AddRow(4, 8, 10, 1, 2, 3, 0, nil, []byte("[6,4]"), false, 0, nil, 0.05, true, 1, now))

	got, err := repo.List(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != 5 || got[1].ID != 4 || got[1].Matches[0] != 6 || got[0].ReseedSeed != nil {
		t.Errorf("List() = %+v", got)
	}

	mock.ExpectQuery(`SELECT \* FROM "template_runs"`).WillReturnError(sql.ErrConnDone)
	if _, err := repo.List(context.Background(), 2); !errors.Is(err, sql.ErrConnDone) {
		t.Errorf("List() err = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGoldenRepo_Redis(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	repo := NewGoldenRepo(&Data{redis: rdb}, testLogger)
	ctx := context.Background()

	if _, err := repo.Get(ctx, etaus.DefaultSeed); !errors.Is(err, biz.ErrGoldenNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrGoldenNotFound", err)
	}

	values := []uint32{0x0a1c747a, 0x59837790, 0}
	if err := repo.Save(ctx, etaus.DefaultSeed, values); err != nil {
		t.Fatal(err)
	}
	key := goldenKey(etaus.DefaultSeed)
	if raw, err := mr.Get(key); err != nil || raw != "0a1c747a,59837790,00000000" {
		t.Errorf("stored %q, %v", raw, err)
	}
	if ttl := mr.TTL(key); ttl != 0 {
		t.Errorf("TTL = %v, want none", ttl)
	}

	got, err := repo.Get(ctx, etaus.DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != values[0] || got[2] != 0 {
		t.Errorf("Get() = %#x", got)
	}

	if err := mr.Set(key, "zz"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get(ctx, etaus.DefaultSeed); err == nil || errors.Is(err, biz.ErrGoldenNotFound) {
		t.Errorf("Get(corrupt) err = %v", err)
	}
}

func TestTemplateJobQueue_Enqueue(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	q := NewTemplateJobQueue(&Data{redis: rdb}, testLogger)

	id, err := q.Enqueue(context.Background(), biz.TemplateConfig{
		Size:    64,
		Samples: 100000,
		Seed:    biz.SeedSpec{Phrase: "alpha"},
		Alpha:   0.01,
	})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := mr.Stream(keyStreamTemplate)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ID != id {
		t.Fatalf("stream entries = %+v, id = %s", entries, id)
	}
	if v := entries[0].Values; len(v) != 2 || v[0] != fieldPayload {
		t.Fatalf("values = %v", v)
	}
	job, err := biz.UnmarshalTemplateJob([]byte(entries[0].Values[1]))
	if err != nil {
		t.Fatal(err)
	}
	if job.Size != 64 || job.Phrase != "alpha" || job.Seed != nil {
		t.Errorf("job = %+v", job)
	}

	mr.SetError("ERR stream unavailable")
	if _, err := q.Enqueue(context.Background(), biz.TemplateConfig{Size: 8, Samples: 10}); err == nil {
		t.Error("expected XAdd error")
	}
}

func TestCloseAll_RedisClosedAfterDBFailure(t *testing.T) {
	db, _, mock := newMockDB(t)
	_, rdb := newMiniRedis(t)
	mock.ExpectClose().WillReturnError(errors.New("close failed"))

	closeAll(log.NewHelper(testLogger), db, rdb)

	if err := rdb.Ping(context.Background()).Err(); !errors.Is(err, redis.ErrClosed) {
		t.Errorf("redis Ping after cleanup = %v, want %v", err, redis.ErrClosed)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
