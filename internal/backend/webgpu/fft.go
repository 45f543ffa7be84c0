package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/DanLovesOrange/holography/internal/field"
)

// runFFT2 executes the 2D transform as four GPU phases recorded into one
// command encoder: Stockham stages over the rows, a transpose, Stockham
// stages over the (now contiguous) columns, and a transpose back. Both
// dimensions must be powers of two; backend selection guarantees that.
// dir is -1 for forward, +1 for inverse (unnormalized).
func (b *Backend) runFFT2(x *field.Field, dir float32) (*field.Field, error) {
	rows, cols := x.Rows(), x.Cols()
	if rows&(rows-1) != 0 || cols&(cols-1) != 0 {
		return nil, fmt.Errorf("webgpu: transform requires power-of-two dimensions, got %v", x.Shape())
	}

	stageShader := b.compileShader("fft_stage", fftStageShader)
	stagePipeline := b.getOrCreatePipeline("fft_stage", stageShader)
	transShader := b.compileShader("ctranspose", ctransposeShader)
	transPipeline := b.getOrCreatePipeline("ctranspose", transShader)

	data := fieldToDevice(x)
	bufferSize := uint64(len(data))

	ping := b.createBuffer(data, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer ping.Release()
	pong := b.createEmptyBuffer(bufferSize)
	defer pong.Release()

	// Uniform and bind-group objects stay alive until the queue has
	// consumed the submission; release them together afterwards.
	var transient []interface{ Release() }
	defer func() {
		for _, t := range transient {
			t.Release()
		}
	}()

	encoder := b.device.CreateCommandEncoder(nil)
	cur, next := ping, pong

	fftPass := func(n, batch int) {
		for ns := 1; ns < n; ns *= 2 {
			params := make([]byte, 16)
			binary.LittleEndian.PutUint32(params[0:4], uint32(n))
			binary.LittleEndian.PutUint32(params[4:8], uint32(ns))
			binary.LittleEndian.PutUint32(params[8:12], uint32(batch))
			binary.LittleEndian.PutUint32(params[12:16], math.Float32bits(dir))
			bufferParams := b.createUniformBuffer(params)
			transient = append(transient, bufferParams)

			layout := stagePipeline.GetBindGroupLayout(0)
			bindGroup := b.device.CreateBindGroupSimple(layout, []wgpu.BindGroupEntry{
				wgpu.BufferBindingEntry(0, cur, 0, bufferSize),
				wgpu.BufferBindingEntry(1, next, 0, bufferSize),
				wgpu.BufferBindingEntry(2, bufferParams, 0, 16),
			})
			transient = append(transient, bindGroup)

			pass := encoder.BeginComputePass(nil)
			pass.SetPipeline(stagePipeline)
			pass.SetBindGroup(0, bindGroup, nil)
			butterflies := batch * n / 2
			pass.DispatchWorkgroups(uint32((butterflies+workgroupSize-1)/workgroupSize), 1, 1)
			pass.End()

			cur, next = next, cur
		}
	}

	transposePass := func(r, c int) {
		params := make([]byte, 16)
		binary.LittleEndian.PutUint32(params[0:4], uint32(r))
		binary.LittleEndian.PutUint32(params[4:8], uint32(c))
		bufferParams := b.createUniformBuffer(params)
		transient = append(transient, bufferParams)

		layout := transPipeline.GetBindGroupLayout(0)
		bindGroup := b.device.CreateBindGroupSimple(layout, []wgpu.BindGroupEntry{
			wgpu.BufferBindingEntry(0, cur, 0, bufferSize),
			wgpu.BufferBindingEntry(1, next, 0, bufferSize),
			wgpu.BufferBindingEntry(2, bufferParams, 0, 16),
		})
		transient = append(transient, bindGroup)

		pass := encoder.BeginComputePass(nil)
		pass.SetPipeline(transPipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		pass.DispatchWorkgroups(uint32((c+15)/16), uint32((r+15)/16), 1)
		pass.End()

		cur, next = next, cur
	}

	fftPass(cols, rows)       // transform every row
	transposePass(rows, cols) // rows×cols → cols×rows
	fftPass(rows, cols)       // transform the original columns
	transposePass(cols, rows) // back to rows×cols

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(cur, bufferSize)
	if err != nil {
		return nil, err
	}
	return fieldFromDevice(resultData, x.Shape()), nil
}
