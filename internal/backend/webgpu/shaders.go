package webgpu

// WGSL compute shaders for complex field operations. Complex samples are
// stored as vec2<f32> (re, im) in storage buffers.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// caddShader performs elementwise complex addition: result = a + b.
const caddShader = `
@group(0) @binding(0) var<storage, read> a: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read> b: array<vec2<f32>>;
@group(0) @binding(2) var<storage, read_write> result: array<vec2<f32>>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = a[idx] + b[idx];
    }
}
`

// csubShader performs elementwise complex subtraction: result = a - b.
const csubShader = `
@group(0) @binding(0) var<storage, read> a: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read> b: array<vec2<f32>>;
@group(0) @binding(2) var<storage, read_write> result: array<vec2<f32>>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = a[idx] - b[idx];
    }
}
`

// cmulShader performs the elementwise complex product:
// (ar+i·ai)(br+i·bi) = (ar·br − ai·bi) + i(ar·bi + ai·br).
const cmulShader = `
@group(0) @binding(0) var<storage, read> a: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read> b: array<vec2<f32>>;
@group(0) @binding(2) var<storage, read_write> result: array<vec2<f32>>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = a[idx];
        let y = b[idx];
        result[idx] = vec2<f32>(x.x * y.x - x.y * y.y, x.x * y.y + x.y * y.x);
    }
}
`

// cdivShader performs elementwise complex division.
const cdivShader = `
@group(0) @binding(0) var<storage, read> a: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read> b: array<vec2<f32>>;
@group(0) @binding(2) var<storage, read_write> result: array<vec2<f32>>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = a[idx];
        let y = b[idx];
        let d = y.x * y.x + y.y * y.y;
        result[idx] = vec2<f32>((x.x * y.x + x.y * y.y) / d, (x.y * y.x - x.x * y.y) / d);
    }
}
`

// cscaleShader multiplies every sample by one complex scalar.
const cscaleShader = `
@group(0) @binding(0) var<storage, read> a: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read_write> result: array<vec2<f32>>;

struct Params {
    size: u32,
    pad: u32,
    scalar: vec2<f32>,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let x = a[idx];
        let s = params.scalar;
        result[idx] = vec2<f32>(x.x * s.x - x.y * s.y, x.x * s.y + x.y * s.x);
    }
}
`

// fftStageShader performs one Stockham radix-2 stage over every row of a
// rows×n matrix. Each thread handles one butterfly: with span ns doubling
// per stage from 1 to n/2, data lands in natural order after log2(n)
// stages. dir is -1 for the forward transform, +1 for the inverse
// (unnormalized).
const fftStageShader = `
@group(0) @binding(0) var<storage, read> src: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read_write> dst: array<vec2<f32>>;

struct Params {
    n: u32,    // row length (power of two)
    ns: u32,   // current butterfly span
    rows: u32, // batch size
    dir: f32,  // -1 forward, +1 inverse
}
@group(0) @binding(2) var<uniform> params: Params;

const PI: f32 = 3.14159265358979323846;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let t = global_id.x;
    let half = params.n / 2u;
    if (t >= params.rows * half) {
        return;
    }
    let row = t / half;
    let j = t % half;
    let base = row * params.n;

    let in0 = src[base + j];
    let in1 = src[base + j + half];

    let angle = params.dir * 2.0 * PI * f32(j % params.ns) / f32(params.ns * 2u);
    let tw = vec2<f32>(cos(angle), sin(angle));
    let prod = vec2<f32>(in1.x * tw.x - in1.y * tw.y, in1.x * tw.y + in1.y * tw.x);

    let out_idx = (j / params.ns) * params.ns * 2u + (j % params.ns);
    dst[base + out_idx] = in0 + prod;
    dst[base + out_idx + params.ns] = in0 - prod;
}
`

// ctransposeShader transposes a rows×cols complex matrix.
const ctransposeShader = `
@group(0) @binding(0) var<storage, read> src: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read_write> dst: array<vec2<f32>>;

struct Params {
    rows: u32,
    cols: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(16, 16)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let row = global_id.y;
    let col = global_id.x;
    if (row >= params.rows || col >= params.cols) {
        return;
    }
    dst[col * params.rows + row] = src[row * params.cols + col];
}
`
