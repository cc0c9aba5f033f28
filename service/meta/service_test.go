package meta_test

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/chanmesh/service/meta"
)

//go:embed testdata/*
var embedFS embed.FS

func TestServiceLoad(t *testing.T) {
	t.Setenv("MESH_WORKERS", "5")

	service := meta.New(afs.New(), "embed:///testdata", &embedFS)
	var profile struct {
		Mesh struct {
			Workers int `yaml:"workers"`
		} `yaml:"mesh"`
	}
	err := service.Load(context.Background(), "profile.yaml", &profile)
	assert.Nil(t, err)
	assert.Equal(t, 5, profile.Mesh.Workers)

	err = service.Load(context.Background(), "missing.yaml", &profile)
	assert.NotNil(t, err)
}
