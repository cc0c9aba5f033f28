package chanmesh_test

import (
	"context"
	"embed"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"
	"github.com/viant/chanmesh"
	"github.com/viant/chanmesh/allocator/process"
	"github.com/viant/x"
)

//go:embed testdata/*
var embedFS embed.FS

func TestServiceProfile(t *testing.T) {
	srv := chanmesh.New(
		chanmesh.WithMetaFsOptions(&embedFS),
		chanmesh.WithMetaBaseURL("embed:///testdata"),
	)
	ctx := context.Background()
	err := srv.LoadProfile(ctx, "profile.yaml")
	assert.Nil(t, err)
	assert.Equal(t, 3, srv.Config().Mesh.Workers)

	group := srv.Allocators()
	assert.Equal(t, 3, len(group))
	// profiles cannot be applied once the mesh exists
	err = srv.LoadProfile(ctx, "profile.yaml")
	assert.NotNil(t, err)
}

func TestServiceScenario(t *testing.T) {
	ctx := context.Background()
	srv := chanmesh.New(chanmesh.WithWorkers(3))
	group := srv.Allocators()

	pushers0, _, format, err := process.Allocate[int](ctx, group[0])
	assert.Nil(t, err)
	assert.Nil(t, format)
	_, puller1, _, err := process.Allocate[int](ctx, group[1])
	assert.Nil(t, err)
	_, puller2, _, err := process.Allocate[int](ctx, group[2])
	assert.Nil(t, err)

	value := 42
	pushers0[2].Push(&value)

	var element *int
	for i := 0; i < 100 && element == nil; i++ {
		element = puller2.Pull()
	}
	if assert.NotNil(t, element) {
		assert.Equal(t, 42, *element)
	}
	assert.Nil(t, puller1.Pull())
}

type signal struct {
	Source int
}

func TestServiceTopology(t *testing.T) {
	ctx := context.Background()
	signalType := x.NewType(reflect.TypeOf(signal{}))
	signalType.Name = "Signal"
	srv := chanmesh.New(
		chanmesh.WithWorkers(2),
		chanmesh.WithExtensionTypes(signalType),
	)
	assert.Nil(t, srv.Topology())

	group := srv.Allocators()
	_, _, _, err := process.Allocate[signal](ctx, group[0])
	assert.Nil(t, err)
	_, _, _, err = process.Allocate[signal](ctx, group[1])
	assert.Nil(t, err)

	topology := srv.Topology()
	assert.Equal(t, 1, len(topology))
	assert.Equal(t, "Signal", topology[0].Type)
	assert.Equal(t, 0, topology[0].Position)
	assert.Equal(t, 2, topology[0].Takes)
}
