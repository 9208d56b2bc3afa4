package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugindev/internal/adapters/cas"        //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/descriptor" //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/resolver"   //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/scanner"    //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/plugindev/internal/core/ports"
	"go.trai.ch/plugindev/internal/engine/upstream"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			upstream.NodeID,
			scanner.NodeID,
			descriptor.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			fs.VerifierNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one check per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	depResolver, err := graft.Dep[ports.DependencyResolver](ctx)
	if err != nil {
		return nil, err
	}

	upstreamResolver, err := graft.Dep[*upstream.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	mojoScanner, err := graft.Dep[ports.MojoScanner](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.DescriptorWriter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.OutputVerifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, depResolver, upstreamResolver, mojoScanner, writer, hasher, store, verifier, log, rec), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	rec, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, rec), nil
}
