package hal

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/xd2d"
)

// copyPitchAlignment is the BytesPerRow alignment for texture to buffer
// copies required by WebGPU and DX12.
const copyPitchAlignment = 256

// clearQuad covers the whole target in device space. Scissored clears draw
// it with the replace pipeline.
var clearQuad = []xd2d.Vertex{
	{Position: xd2d.V2(-1, 1), Texcoord: xd2d.V2(0, 0)},
	{Position: xd2d.V2(1, 1), Texcoord: xd2d.V2(1, 0)},
	{Position: xd2d.V2(-1, -1), Texcoord: xd2d.V2(0, 1)},
	{Position: xd2d.V2(-1, -1), Texcoord: xd2d.V2(0, 1)},
	{Position: xd2d.V2(1, 1), Texcoord: xd2d.V2(1, 0)},
	{Position: xd2d.V2(1, -1), Texcoord: xd2d.V2(1, 1)},
}

// frameResources holds the GPU objects reused across frames. Buffers only
// grow; the texture is recreated when the frame size changes.
type frameResources struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	texture hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32

	vertBuf     hal.Buffer
	vertBufSize uint64

	// Uniform slot 0 is the fill color, slot i>0 the color of the i-th
	// Clear command of the frame. Every slot owns a buffer bound at offset
	// zero; the software backend ignores binding offsets.
	uniformBufs []hal.Buffer
	bindGroups  []hal.BindGroup

	stagingBuf     hal.Buffer
	stagingBufSize uint64

	// scratch upload buffers
	vertBytes    []byte
	uniformBytes []byte
}

// ensureTarget creates the render target texture for a w x h frame.
func (r *frameResources) ensureTarget(w, h uint32) error {
	if r.texture != nil && r.width == w && r.height == h {
		return nil
	}
	r.destroyTarget()

	tex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "xd2d_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        r.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	view, err := r.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "xd2d_target_view",
		Format:        r.format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		r.device.DestroyTexture(tex)
		return fmt.Errorf("create target view: %w", err)
	}
	r.texture, r.view, r.width, r.height = tex, view, w, h
	xd2d.Logger().Debug("hal: render target created", "width", w, "height", h)
	return nil
}

// uploadVertices writes vs followed by clearQuad to the vertex buffer and
// returns the offset of clearQuad.
func (r *frameResources) uploadVertices(vs []xd2d.Vertex) (uint32, error) {
	r.vertBytes = xd2d.AppendVertexBytes(r.vertBytes[:0], vs)
	r.vertBytes = xd2d.AppendVertexBytes(r.vertBytes, clearQuad)

	buf, err := r.grow(r.vertBuf, &r.vertBufSize, uint64(len(r.vertBytes)),
		"xd2d_vertices", gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return 0, err
	}
	r.vertBuf = buf
	if err := r.queue.WriteBuffer(r.vertBuf, 0, r.vertBytes); err != nil {
		return 0, fmt.Errorf("write vertices: %w", err)
	}
	return uint32(len(vs)), nil
}

// uploadColors writes fill and clears into their uniform slots, creating
// slots as needed.
func (r *frameResources) uploadColors(layout hal.BindGroupLayout, fill xd2d.Color, clears []xd2d.Color) error {
	if err := r.ensureSlots(layout, 1+len(clears)); err != nil {
		return err
	}
	for i := -1; i < len(clears); i++ {
		c := fill
		if i >= 0 {
			c = clears[i]
		}
		r.uniformBytes = appendUniform(r.uniformBytes[:0], c)
		if err := r.queue.WriteBuffer(r.uniformBufs[i+1], 0, r.uniformBytes); err != nil {
			return fmt.Errorf("write uniform slot %d: %w", i+1, err)
		}
	}
	return nil
}

// ensureSlots creates uniform buffers and bind groups up to slot n-1.
// Slots are kept for later frames.
func (r *frameResources) ensureSlots(layout hal.BindGroupLayout, n int) error {
	for len(r.bindGroups) < n {
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "xd2d_fill_uniform",
			Size:  fillUniformSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create uniform buffer: %w", err)
		}
		bg, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  "xd2d_fill_bind_group",
			Layout: layout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{
					Buffer: buf.NativeHandle(),
					Size:   fillUniformSize,
				}},
			},
		})
		if err != nil {
			r.device.DestroyBuffer(buf)
			return fmt.Errorf("create bind group: %w", err)
		}
		r.uniformBufs = append(r.uniformBufs, buf)
		r.bindGroups = append(r.bindGroups, bg)
	}
	return nil
}

// ensureStaging returns a map-readable buffer of at least size bytes.
func (r *frameResources) ensureStaging(size uint64) (hal.Buffer, error) {
	buf, err := r.grow(r.stagingBuf, &r.stagingBufSize, size,
		"xd2d_staging", gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	r.stagingBuf = buf
	return buf, nil
}

// grow returns buf when it holds need bytes and a larger replacement
// otherwise. Capacity doubles to amortize reallocation.
func (r *frameResources) grow(buf hal.Buffer, size *uint64, need uint64, label string, usage gputypes.BufferUsage) (hal.Buffer, error) {
	if buf != nil && *size >= need {
		return buf, nil
	}
	newSize := max(need, 2**size)
	// Buffer sizes must be 4-byte aligned for writes.
	newSize = (newSize + 3) &^ 3
	nb, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  newSize,
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s buffer (%d bytes): %w", label, newSize, err)
	}
	if buf != nil {
		r.device.DestroyBuffer(buf)
	}
	*size = newSize
	xd2d.Logger().Debug("hal: buffer grown", "buffer", label, "size", newSize)
	return nb, nil
}

func (r *frameResources) destroySlots() {
	for i, bg := range r.bindGroups {
		r.device.DestroyBindGroup(bg)
		r.device.DestroyBuffer(r.uniformBufs[i])
	}
	r.bindGroups = r.bindGroups[:0]
	r.uniformBufs = r.uniformBufs[:0]
}

func (r *frameResources) destroyTarget() {
	if r.view != nil {
		r.device.DestroyTextureView(r.view)
		r.view = nil
	}
	if r.texture != nil {
		r.device.DestroyTexture(r.texture)
		r.texture = nil
	}
	r.width, r.height = 0, 0
}

// destroy releases all frame resources in reverse creation order.
func (r *frameResources) destroy() {
	if r.device == nil {
		return
	}
	r.destroySlots()
	for _, b := range []*hal.Buffer{&r.stagingBuf, &r.vertBuf} {
		if *b != nil {
			r.device.DestroyBuffer(*b)
			*b = nil
		}
	}
	r.stagingBufSize, r.vertBufSize = 0, 0
	r.destroyTarget()
}

// appendUniform appends c as a straight-alpha vec4<f32>.
func appendUniform(dst []byte, c xd2d.Color) []byte {
	for _, f := range c.Float32s() {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

// target encodes one frame. Clears that cover the whole target start a new
// render pass with a clear load op; scissored clears draw clearQuad with
// the replace pipeline.
type target struct {
	d *Device
	f *xd2d.Frame

	enc     hal.CommandEncoder
	pass    hal.RenderPassEncoder
	bounds  image.Rectangle
	scissor image.Rectangle

	quadOffset uint32
	clears     int // Clear commands seen so far
	err        error
}

func (t *target) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: frame %dx%d", ErrInvalidDimensions, width, height)
	}
	d := t.d
	r := &d.resources
	if err := r.ensureTarget(uint32(width), uint32(height)); err != nil {
		return err
	}
	t.bounds = image.Rect(0, 0, width, height)
	t.scissor = t.bounds

	off, err := r.uploadVertices(t.f.Vertices)
	if err != nil {
		return err
	}
	t.quadOffset = off

	var clears []xd2d.Color
	for _, cmd := range t.f.Commands {
		if c, ok := cmd.(xd2d.ClearCommand); ok {
			clears = append(clears, c.Color)
		}
	}
	if err := r.uploadColors(d.pipes.uniformLayout, d.cfg.Fill, clears); err != nil {
		return err
	}

	enc, err := beginEncoder(d.device)
	if err != nil {
		return err
	}
	t.enc = enc
	xd2d.Logger().Debug("hal: encoding frame",
		"width", width, "height", height,
		"commands", len(t.f.Commands), "vertices", len(t.f.Vertices))
	return nil
}

// encoderSource is the part of hal.Device that creates encoders.
type encoderSource interface {
	CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error)
}

// beginEncoder creates a frame encoder in the recording state. An encoder
// that fails to begin is discarded.
func beginEncoder(src encoderSource) (hal.CommandEncoder, error) {
	enc, err := src.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "xd2d_frame_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := enc.BeginEncoding("xd2d_frame"); err != nil {
		enc.DiscardEncoding()
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	return enc, nil
}

func (t *target) Clear(c xd2d.Color) {
	t.clears++
	slot := t.clears
	if t.err != nil || t.scissor.Empty() {
		return
	}
	if t.scissor == t.bounds {
		t.endPass()
		t.beginPass(gputypes.LoadOpClear, c.GPU())
		return
	}
	t.ensurePass()
	t.drawWith(t.d.pipes.replace, slot, 6, t.quadOffset)
}

func (t *target) Clip(r xd2d.Rect) {
	t.scissor = r.Pixels(t.bounds)
	if t.pass != nil && !t.scissor.Empty() {
		t.setScissor()
	}
}

func (t *target) Draw(cmd xd2d.DrawCommand, _ []xd2d.Vertex) {
	if t.err != nil || t.scissor.Empty() || cmd.VertexCount == 0 {
		return
	}
	t.ensurePass()
	t.drawWith(t.d.pipes.get(cmd.Primitive), 0, cmd.VertexCount, cmd.VertexOffset)
}

func (t *target) End() error {
	if t.err != nil {
		t.discard()
		return t.err
	}
	t.endPass()

	d := t.d
	r := &d.resources
	w, h := r.width, r.height
	bytesPerRow := w * 4
	pitch := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	if d.tightRows {
		pitch = bytesPerRow
	}
	size := uint64(pitch) * uint64(h)
	staging, err := r.ensureStaging(size)
	if err != nil {
		t.discard()
		return err
	}

	t.enc.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.texture,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	t.enc.CopyTextureToBuffer(r.texture, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: pitch, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.texture, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	t.enc.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.texture,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := t.enc.EndEncoding()
	t.enc = nil
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	if _, err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := d.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	return t.readback(staging, pitch, size)
}

// readback copies the staging buffer into d.img, stripping row padding and
// converting BGRA targets to RGBA.
func (t *target) readback(staging hal.Buffer, pitch uint32, size uint64) error {
	d := t.d
	w, h := int(d.resources.width), int(d.resources.height)
	if d.img == nil || d.img.Bounds().Dx() != w || d.img.Bounds().Dy() != h {
		d.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	m, err := d.device.MapBuffer(staging, 0, size)
	if err != nil {
		return fmt.Errorf("map staging buffer: %w", err)
	}
	src := unsafe.Slice((*byte)(m.Ptr), size)
	bgra := d.format == gputypes.TextureFormatBGRA8Unorm
	for y := range h {
		row := src[y*int(pitch) : y*int(pitch)+w*4]
		dst := d.img.Pix[y*d.img.Stride : y*d.img.Stride+w*4]
		if !bgra {
			copy(dst, row)
			continue
		}
		for x := 0; x < len(row); x += 4 {
			dst[x+0] = row[x+2]
			dst[x+1] = row[x+1]
			dst[x+2] = row[x+0]
			dst[x+3] = row[x+3]
		}
	}
	if err := d.device.UnmapBuffer(staging); err != nil {
		return fmt.Errorf("unmap staging buffer: %w", err)
	}
	return nil
}

// discard abandons the frame after an error.
func (t *target) discard() {
	if t.pass != nil {
		t.pass.End()
		t.pass = nil
	}
	if t.enc != nil {
		t.enc.DiscardEncoding()
		t.enc = nil
	}
}

func (t *target) ensurePass() {
	if t.pass == nil {
		t.beginPass(gputypes.LoadOpLoad, gputypes.Color{})
	}
}

func (t *target) beginPass(load gputypes.LoadOp, clear gputypes.Color) {
	t.pass = t.enc.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "xd2d_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       t.d.resources.view,
			LoadOp:     load,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: clear,
		}},
	})
	if !t.scissor.Empty() {
		t.setScissor()
	}
}

func (t *target) endPass() {
	if t.pass != nil {
		t.pass.End()
		t.pass = nil
	}
}

func (t *target) setScissor() {
	s := t.scissor
	t.pass.SetScissorRect(uint32(s.Min.X), uint32(s.Min.Y), uint32(s.Dx()), uint32(s.Dy()))
}

func (t *target) drawWith(pipeline hal.RenderPipeline, slot int, count, first uint32) {
	t.pass.SetPipeline(pipeline)
	t.pass.SetBindGroup(0, t.d.resources.bindGroups[slot], nil)
	t.pass.SetVertexBuffer(0, t.d.resources.vertBuf, 0)
	t.pass.Draw(count, 1, first, 0)
}
