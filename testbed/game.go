package testbed

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/scena/engine/config"
	"github.com/spaghettifunk/scena/engine/core"
	"github.com/spaghettifunk/scena/engine/elements"
	"github.com/spaghettifunk/scena/engine/instances"
	"github.com/spaghettifunk/scena/engine/math"
	"github.com/spaghettifunk/scena/engine/renderer"
	"github.com/spaghettifunk/scena/engine/resources"
	"github.com/spaghettifunk/scena/engine/scene"
	"github.com/spaghettifunk/scena/engine/transactions"
)

const (
	cubeCount       = 3
	cubeSpacing     = 2.5
	cloudPointCount = 256
	orbitRadius     = 6.0
	frameRate       = 60
)

// Game drives a small scene against the software backend: a camera orbiting
// a row of spinning cubes, a ring-shaped point cloud and an inanimate debug
// marker.
type Game struct {
	renderer *renderer.Renderer
	backend  *SoftwareBackend
	stats    *core.FrameStats

	camera         *elements.Camera
	cameraInstance *instances.CameraInstance
	cubes          []*instances.RigidMeshInstance
	marker         *resources.InanimateMesh

	elapsed float64
}

// Create a new Game wired to a fresh software backend
func NewGame(cfg *config.Config) (*Game, error) {
	backend := NewSoftwareBackend(cfg)
	rnd, err := renderer.NewRenderer(cfg, backend)
	if err != nil {
		backend.Shutdown()
		return nil, err
	}
	game := &Game{
		renderer: rnd,
		backend:  backend,
		stats:    core.NewFrameStats(),
	}
	if err := game.setup(); err != nil {
		rnd.Shutdown()
		return nil, fmt.Errorf("func NewGame - cannot build the scene: %w", err)
	}
	return game, nil
}

// setup records the initial scene in a single transaction.
func (g *Game) setup() error {
	recorder := g.renderer.Record()
	defer recorder.Finish()
	transaction := recorder.Transaction()

	elementGroup := g.renderer.Elements()
	instanceGroup := g.renderer.Instances()
	resourceGroup := g.renderer.Resources()

	cameraHandle, err := elementGroup.Cameras().MutateVia(transaction).Insert(
		elements.NewCameraBuilder().
			WithProjection(elements.NewPerspectiveProjection(60.0*math.K_DEG2RAD_MULTIPLIER, 16.0/9.0, 0.1, 100.0)).
			WithDebugInfo(core.NewDebugInfo("main-camera")))
	if err != nil {
		return err
	}
	camera, ok := elementGroup.Cameras().Get(cameraHandle)
	if !ok {
		return fmt.Errorf("func setup - main camera disappeared")
	}
	g.camera = camera

	cameraInstanceHandle, err := instanceGroup.CameraInstances().MutateVia(transaction).Insert(
		instances.NewCameraInstanceBuilder().
			WithCamera(camera).
			WithTransform(g.orbitTransform(0)).
			WithDebugInfo(core.NewDebugInfo("main-camera-instance")))
	if err != nil {
		return err
	}
	cameraInstance, ok := instanceGroup.CameraInstances().Get(cameraInstanceHandle)
	if !ok {
		return fmt.Errorf("func setup - main camera instance disappeared")
	}
	g.cameraInstance = cameraInstance

	// A row of unit cubes sharing one set of mesh attributes.
	model := scene.CubeModel("demo-cube", 1.0, 1.0, 1.0)
	collection, err := scene.NewRigidMeshCollection(model, resourceGroup, elementGroup, transaction)
	if err != nil {
		return err
	}
	for i := 0; i < cubeCount; i++ {
		instanceCollection, err := scene.NewRigidMeshInstanceCollection(
			collection, elementGroup.RigidMeshes(), instanceGroup, transaction, g.cubeTransform(i, 0))
		if err != nil {
			return err
		}
		for _, handle := range instanceCollection.RigidMeshInstances() {
			cube, ok := instanceGroup.RigidMeshInstances().Get(handle)
			if !ok {
				return fmt.Errorf("func setup - cube instance %d disappeared", i)
			}
			g.cubes = append(g.cubes, cube)
		}
	}

	if err := g.setupPointCloud(transaction); err != nil {
		return err
	}
	return g.setupMarker()
}

// setupPointCloud builds a ring of colored points hovering above the cubes.
func (g *Game) setupPointCloud(transaction *transactions.Transaction) error {
	positions := make([]math.Vec3, cloudPointCount)
	colors := make([]math.ByteColor3, cloudPointCount)
	for i := 0; i < cloudPointCount; i++ {
		angle := float32(i) / cloudPointCount * math.K_PI_2
		positions[i] = math.NewVec3(math.Cos(angle)*4.0, -2.5, math.Sin(angle)*4.0)
		colors[i] = math.ByteColor3{
			R: uint8(128 + 127*math.Sin(angle)),
			G: 64,
			B: uint8(128 + 127*math.Cos(angle)),
		}
	}

	resourceGroup := g.renderer.Resources()
	attributes, err := resourceGroup.PointCloudAttributes().Insert(
		resources.NewPointCloudAttributesBuilder().
			WithPointPositions(positions).
			WithPointColors(colors).
			WithDebugInfo(core.NewDebugInfo("demo-ring-attributes")))
	if err != nil {
		return err
	}

	elementGroup := g.renderer.Elements()
	pointCloudHandle, err := elementGroup.PointClouds().MutateVia(transaction).Insert(
		elements.NewPointCloudBuilder().
			WithPointCloudAttributes(attributes).
			WithPreferredPointCloudRepresentation(elements.PointCloudRepresentationSimple).
			WithDebugInfo(core.NewDebugInfo("demo-ring")))
	if err != nil {
		return err
	}
	pointCloud, ok := elementGroup.PointClouds().Get(pointCloudHandle)
	if !ok {
		return fmt.Errorf("func setupPointCloud - point cloud disappeared")
	}

	_, err = g.renderer.Instances().PointCloudInstances().MutateVia(transaction).Insert(
		instances.NewPointCloudInstanceBuilder().
			WithPointCloud(pointCloud).
			WithTransform(math.NewMat4Identity()).
			WithDebugInfo(core.NewDebugInfo("demo-ring-instance")))
	return err
}

// setupMarker streams a single triangle through the inanimate mesh tier.
func (g *Game) setupMarker() error {
	positions := []math.Vec3{
		math.NewVec3(0.0, -4.0, 0.0),
		math.NewVec3(0.5, -3.0, 0.0),
		math.NewVec3(-0.5, -3.0, 0.0),
	}
	normals := math.GenerateNormals(positions, []uint32{0, 1, 2})

	marker, err := g.renderer.Resources().InanimateMeshes().
		Create(resources.MeshTypeTriangleList, positions, normals).
		WithIndices([]uint32{0, 1, 2}).
		WithDebugInfo(core.NewDebugInfo("demo-marker")).
		Build()
	if err != nil {
		return err
	}
	g.marker = marker
	return nil
}

// orbitTransform returns the camera transform for one point of the orbit.
func (g *Game) orbitTransform(elapsed float64) instances.CameraTransform {
	angle := float32(elapsed) * 0.5
	position := math.NewVec3(math.Sin(angle)*orbitRadius, -2.0, -math.Cos(angle)*orbitRadius)
	forward := math.NewVec3Zero().Sub(position).Normalize()
	return instances.CameraTransform{
		Position: position,
		Forward:  forward,
		Up:       math.NewVec3(0.0, -1.0, 0.0),
	}
}

// cubeTransform places cube i in the row and spins it.
func (g *Game) cubeTransform(i int, elapsed float64) math.Mat4 {
	offset := (float32(i) - float32(cubeCount-1)/2.0) * cubeSpacing
	translation := math.NewMat4Translation(math.NewVec3(offset, 0.0, 0.0))
	rotation := math.NewMat4EulerY(float32(elapsed) + float32(i))
	return translation.Mul(rotation)
}

// update records one frame worth of scene changes.
func (g *Game) update(delta float64) {
	g.elapsed += delta

	recorder := g.renderer.Record()
	defer recorder.Finish()
	transaction := recorder.Transaction()

	g.cameraInstance.MutateVia(transaction).SetTransform(g.orbitTransform(g.elapsed))
	for i, cube := range g.cubes {
		cube.MutateVia(transaction).SetTransform(g.cubeTransform(i, g.elapsed))
	}

	// Breathe the field of view a little so projection updates flow too.
	fov := (60.0 + 5.0*math.Sin(float32(g.elapsed)*0.3)) * math.K_DEG2RAD_MULTIPLIER
	g.camera.MutateVia(transaction).SetProjection(
		elements.NewPerspectiveProjection(fov, 16.0/9.0, 0.1, 100.0))
}

// Run drives the frame loop until the context is canceled.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	clock := g.renderer.Clock()
	lastElapsed := 0.0
	frames := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		clock.Update()
		delta := clock.ElapsedSeconds() - lastElapsed
		lastElapsed = clock.ElapsedSeconds()

		g.backend.BeginFrame()
		g.update(delta)
		g.backend.Render()

		g.stats.Update(delta)
		frames++
		if frames%(frameRate*5) == 0 {
			core.LogInfo("%.0f fps, %.2f ms per frame", g.stats.FPS(), g.stats.FrameTimeMS())
		}
	}
}

// ApplyConfig forwards a reloaded configuration to the renderer.
func (g *Game) ApplyConfig(cfg *config.Config) {
	g.renderer.ApplyConfig(cfg)
}

// Shutdown stops the frame loop's renderer and tears down the backend.
func (g *Game) Shutdown() error {
	return g.renderer.Shutdown()
}
