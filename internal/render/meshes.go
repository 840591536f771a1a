package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere resolution for bodies and for the background.
const (
	bodySphereRings      = 36
	bodySphereSlices     = 36
	starfieldSphereRings = 50
	starfieldSlices      = 50
)

// meshes holds the unit sphere meshes and the materials drawn with them. Created after the
// window/OpenGL context exists and reused every frame.
type meshes struct {
	sphere    rl.Mesh
	starfield rl.Mesh
	textured  rl.Material // albedo texture, unlit
	flat      rl.Material // albedo colour only, for bodies whose texture failed
	lit       rl.Material // textured with the sun as a point light; valid only when lighting is on
	litFlat   rl.Material
	lighting  bool
}

func newMeshes(lighting bool) *meshes {
	m := &meshes{
		sphere:    rl.GenMeshSphere(1, bodySphereRings, bodySphereSlices),
		starfield: rl.GenMeshSphere(1, starfieldSphereRings, starfieldSlices),
		textured:  rl.LoadMaterialDefault(),
		flat:      rl.LoadMaterialDefault(),
	}
	if albedo := m.textured.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	if !lighting {
		return m
	}
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return m
	}
	m.lit = rl.LoadMaterialDefault()
	m.lit.Shader = shader
	m.litFlat = rl.LoadMaterialDefault()
	m.litFlat.Shader = shader
	if albedo := m.lit.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	m.lighting = true
	setLitUniforms(shader)
	return m
}

// drawSphere draws the unit sphere scaled to radius, turned by deg around +Y and moved to center.
// An invalid texture falls back to the flat material tinted with fallback. The star is never lit.
func (m *meshes) drawSphere(center rl.Vector3, deg, radius float32, tex rl.Texture2D, fallback rl.Color, emissive bool) {
	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(radius, radius, radius), rl.MatrixRotateY(deg*rl.Deg2rad)),
		rl.MatrixTranslate(center.X, center.Y, center.Z),
	)
	lit := m.lighting && !emissive
	if rl.IsTextureValid(tex) {
		mtl := &m.textured
		if lit {
			mtl = &m.lit
		}
		rl.SetMaterialTexture(mtl, rl.MapAlbedo, tex)
		rl.DrawMesh(m.sphere, *mtl, transform)
		return
	}
	mtl := &m.flat
	if lit {
		mtl = &m.litFlat
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = fallback
	}
	rl.DrawMesh(m.sphere, *mtl, transform)
}

func (m *meshes) unload() {
	rl.UnloadMesh(&m.sphere)
	rl.UnloadMesh(&m.starfield)
	if m.lighting {
		rl.UnloadShader(m.lit.Shader)
	}
}

// The sun at the origin is a point light. Ambient keeps night sides visible.
var (
	ambientLight = [4]float32{0.18, 0.18, 0.22, 1.0}
	sunLight     = [3]float32{1.0, 0.97, 0.9}
)

func setLitUniforms(shader rl.Shader) {
	amb := ambientLight
	col := sunLight
	pos := [3]float32{0, 0, 0}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, pos[:], rl.ShaderUniformVec3, 1)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform vec3 lightPos;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  finalColor = vec4(ambient.rgb * tint.rgb + tint.rgb * lightColor * NdotL, tint.a);
}
`
)
