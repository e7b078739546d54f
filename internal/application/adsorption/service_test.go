package adsorption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matgen-io/surfgen/internal/config"
	domainslab "github.com/matgen-io/surfgen/internal/domain/slab"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
)

type stubProvider struct {
	structure *domainslab.MaterialStructure
	err       error
	lastQuery string
}

func (p *stubProvider) BuildStructure(_ context.Context, query string) (*domainslab.MaterialStructure, error) {
	p.lastQuery = query
	return p.structure, p.err
}

func builtSlab(query string) *domainslab.MaterialStructure {
	return domainslab.NewBuilder(domainslab.DefaultParams()).Build(query)
}

func newTestService(provider StructureProvider, opts ...Option) Service {
	return NewService(config.NewDefaultConfig().Engine, provider, nil, opts...)
}

func TestAnalyze_EndToEnd(t *testing.T) {
	provider := &stubProvider{structure: builtSlab("Au(111)")}
	svc := newTestService(provider)

	seed := int64(42)
	resp, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Query: "Au(111)", Adsorbate: "CO", Seed: &seed,
	})
	require.NoError(t, err)

	assert.Equal(t, "Au(111)", provider.lastQuery)
	assert.Equal(t, seed, resp.Seed)
	assert.NotEmpty(t, resp.Sites)
	assert.LessOrEqual(t, len(resp.Sites), config.DefaultMaxSites)
	for i := 1; i < len(resp.Sites); i++ {
		assert.LessOrEqual(t, resp.Sites[i-1].Energy, resp.Sites[i].Energy)
	}
	assert.NotEmpty(t, resp.Summary)
	assert.NotEmpty(t, resp.PotentialLabel)
}

func TestAnalyze_SameSeedSameResult(t *testing.T) {
	provider := &stubProvider{structure: builtSlab("Pt(111)")}
	svc := newTestService(provider)

	seed := int64(7)
	first, err := svc.Analyze(context.Background(), AnalyzeRequest{Query: "Pt(111)", Adsorbate: "NH3", Seed: &seed})
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), AnalyzeRequest{Query: "Pt(111)", Adsorbate: "NH3", Seed: &seed})
	require.NoError(t, err)

	assert.Equal(t, first.Sites, second.Sites)
}

func TestAnalyze_BlankAdsorbateRejected(t *testing.T) {
	provider := &stubProvider{structure: builtSlab("Au(111)")}
	svc := newTestService(provider)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Query: "Au(111)", Adsorbate: " "})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAdsorbateInvalid))
}

func TestAnalyze_PropagatesEmptyStructure(t *testing.T) {
	provider := &stubProvider{structure: &domainslab.MaterialStructure{}}
	svc := newTestService(provider)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Query: "whatever", Adsorbate: "CO"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeStructureEmpty))
}

func TestAnalyze_BuildErrorPropagates(t *testing.T) {
	provider := &stubProvider{err: apperrors.New(apperrors.ErrCodeSlabQueryInvalid, "blank")}
	svc := newTestService(provider)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Query: "", Adsorbate: "CO"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSlabQueryInvalid))
}

func TestResolveSeed_ClockOnlyWhenConfigured(t *testing.T) {
	cfg := config.NewDefaultConfig().Engine
	cfg.DefaultRandomSeed = 0
	cfg.SeedFromClockIfUnset = true

	clockCalls := 0
	svc := NewService(cfg, &stubProvider{structure: builtSlab("Au(111)")}, nil,
		WithClockSeed(func() int64 { clockCalls++; return 99 }))

	resp, err := svc.Analyze(context.Background(), AnalyzeRequest{Query: "Au(111)", Adsorbate: "CO"})
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.Seed)
	assert.Equal(t, 1, clockCalls)

	// An explicit seed bypasses the clock.
	seed := int64(5)
	resp, err = svc.Analyze(context.Background(), AnalyzeRequest{Query: "Au(111)", Adsorbate: "CO", Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Seed)
	assert.Equal(t, 1, clockCalls)
}
