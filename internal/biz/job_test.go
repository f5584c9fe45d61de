package biz

import (
	"testing"

	"etaus/pkg/etaus"

	"github.com/go-kratos/kratos/v2/encoding"
)

func TestTemplateJob(t *testing.T) {
	reseed := etaus.Seed{1, 2, 3}
	cfg := TemplateConfig{
		Size:       64,
		Samples:    100000,
		Seed:       SeedSpec{Seed: &etaus.DefaultSeed},
		ReseedAt:   50000,
		ReseedSeed: &reseed,
		Alpha:      0.01,
	}
	body, err := NewTemplateJob(cfg).Marshal()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"size":64,"samples":100000,"seed":[123456789,123456806,123456820],"reseed_at":50000,"reseed_seed":[1,2,3],"alpha":0.01}`
	if string(body) != want {
		t.Errorf("payload = %s\nwant %s", body, want)
	}

	job, err := UnmarshalTemplateJob(body)
	if err != nil {
		t.Fatal(err)
	}
	got := job.Config()
	if got.Size != 64 || got.Samples != 100000 || *got.Seed.Seed != etaus.DefaultSeed ||
		got.ReseedAt != 50000 || *got.ReseedSeed != reseed || got.Alpha != 0.01 {
		t.Errorf("Config() = %+v", got)
	}

	if _, err := UnmarshalTemplateJob([]byte("{")); err == nil {
		t.Error("expected decode error")
	}
}

func TestTemplateJob_Phrase(t *testing.T) {
	job, err := UnmarshalTemplateJob([]byte(`{"size":8,"samples":10,"phrase":"alpha"}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := job.Config()
	if cfg.Seed.Seed != nil || cfg.Seed.Phrase != "alpha" || cfg.ReseedSeed != nil {
		t.Errorf("Config() = %+v", cfg)
	}
}

func TestTemplateJob_KratosCodec(t *testing.T) {
	codec := encoding.GetCodec("json")
	if codec == nil || jobCodec != codec {
		t.Fatalf("job codec = %v, want registered kratos json codec", jobCodec)
	}
	seed := etaus.Seed{7, 8, 9}
	body, err := codec.Marshal(TemplateJob{Size: 16, Samples: 500, Seed: &seed, Alpha: 0.05})
	if err != nil {
		t.Fatal(err)
	}
	job, err := UnmarshalTemplateJob(body)
	if err != nil {
		t.Fatal(err)
	}
	if job.Size != 16 || job.Samples != 500 || *job.Seed != seed || job.Phrase != "" || job.Alpha != 0.05 {
		t.Errorf("decoded job = %+v", job)
	}
}
