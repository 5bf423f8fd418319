package primitives

import (
	"runway/internal/lighting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadLitShader returns the shader used for every untextured primitive:
// ambient + directional + up to lighting.MaxLocalLights spot/point lights,
// Blinn-Phong specular and linear fog.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// loadLitTexturedShader is loadLitShader with the albedo sampled from MapAlbedo.
func loadLitTexturedShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litTexturedFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litCommon = `
#define MAX_LOCALS 4
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform float localCount;
uniform vec3 localPos[MAX_LOCALS];
uniform vec3 localDir[MAX_LOCALS];
uniform vec3 localColor[MAX_LOCALS];
uniform vec2 localCone[MAX_LOCALS];
uniform vec2 localRange[MAX_LOCALS];
uniform float fogNear;
uniform float fogFar;
uniform vec3 fogColor;
out vec4 finalColor;

vec3 shade(vec4 tint) {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 color = ambient.rgb * tint.rgb + tint.rgb * NdotL * lightColor * lightIntensity;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), specularPower) * specularStrength;
  color += lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  for (int i = 0; i < MAX_LOCALS; i++) {
    if (float(i) >= localCount) break;
    vec3 toLight = localPos[i] - fragPosition;
    float dist = length(toLight);
    vec3 Ll = toLight / max(dist, 0.0001);
    float att = 1.0;
    if (localRange[i].x > 0.0) {
      att = pow(clamp(1.0 - dist / localRange[i].x, 0.0, 1.0), localRange[i].y);
    }
    float cosA = dot(-Ll, normalize(localDir[i]));
    float cone = localCone[i].y <= -1.0 ? 1.0 : smoothstep(localCone[i].y, localCone[i].x, cosA);
    float nl = max(dot(N, Ll), 0.0);
    float s = pow(max(dot(N, normalize(Ll + V)), 0.0), specularPower) * specularStrength;
    color += (tint.rgb * nl + s) * localColor[i] * att * cone;
  }
  float f = fogFar > fogNear ? clamp((length(viewPos - fragPosition) - fogNear) / (fogFar - fogNear), 0.0, 1.0) : 0.0;
  return mix(color, fogColor, f);
}
`
	litFS = "#version 330\n" + litCommon + `
void main() {
  finalColor = vec4(shade(colDiffuse), colDiffuse.a);
}
`
	litTexturedFS = "#version 330\n" + litCommon + `
uniform sampler2D texture0;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  finalColor = vec4(shade(tint), tint.a);
}
`
)

// litLocs caches uniform locations of a lit shader.
type litLocs struct {
	viewPos, lightDir, ambient, lightColor, lightIntensity int32
	specularPower, specularStrength                        int32
	localCount, localPos, localDir, localColor, localCone  int32
	localRange, fogNear, fogFar, fogColor                  int32
}

func lookupLocs(s rl.Shader) litLocs {
	return litLocs{
		viewPos:          rl.GetShaderLocation(s, "viewPos"),
		lightDir:         rl.GetShaderLocation(s, "lightDir"),
		ambient:          rl.GetShaderLocation(s, "ambient"),
		lightColor:       rl.GetShaderLocation(s, "lightColor"),
		lightIntensity:   rl.GetShaderLocation(s, "lightIntensity"),
		specularPower:    rl.GetShaderLocation(s, "specularPower"),
		specularStrength: rl.GetShaderLocation(s, "specularStrength"),
		localCount:       rl.GetShaderLocation(s, "localCount"),
		localPos:         rl.GetShaderLocation(s, "localPos"),
		localDir:         rl.GetShaderLocation(s, "localDir"),
		localColor:       rl.GetShaderLocation(s, "localColor"),
		localCone:        rl.GetShaderLocation(s, "localCone"),
		localRange:       rl.GetShaderLocation(s, "localRange"),
		fogNear:          rl.GetShaderLocation(s, "fogNear"),
		fogFar:           rl.GetShaderLocation(s, "fogFar"),
		fogColor:         rl.GetShaderLocation(s, "fogColor"),
	}
}

func setFloat(s rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(s, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

func setVec(s rl.Shader, loc int32, v []float32, typ rl.ShaderUniformDataType, count int32) {
	if loc >= 0 && count > 0 {
		rl.SetShaderValueV(s, loc, v, typ, count)
	}
}

// applyRig uploads the per-frame lighting uniforms (cgo-safe: local slices).
func applyRig(s rl.Shader, locs litLocs, viewPos [3]float32, rig lighting.Rig) {
	if !rl.IsShaderValid(s) {
		return
	}
	dir := rig.LightDir()
	amb := rig.AmbientColor
	setVec(s, locs.viewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	setVec(s, locs.lightDir, dir[:], rl.ShaderUniformVec3, 1)
	setVec(s, locs.ambient, []float32{amb[0] * rig.Ambient, amb[1] * rig.Ambient, amb[2] * rig.Ambient, 1}, rl.ShaderUniformVec4, 1)
	lc := rig.DirectionalColor
	setVec(s, locs.lightColor, lc[:], rl.ShaderUniformVec3, 1)
	setFloat(s, locs.lightIntensity, rig.DirectionalIntensity*0.5)
	setFloat(s, locs.specularPower, rig.SpecularPower)

	locals := rig.ActiveLocals()
	n := int32(len(locals))
	pos := make([]float32, 0, 3*n)
	ldir := make([]float32, 0, 3*n)
	col := make([]float32, 0, 3*n)
	cone := make([]float32, 0, 2*n)
	rng := make([]float32, 0, 2*n)
	for _, l := range locals {
		pos = append(pos, l.Position[:]...)
		ldir = append(ldir, l.Direction[:]...)
		col = append(col, l.Color[0]*l.Intensity, l.Color[1]*l.Intensity, l.Color[2]*l.Intensity)
		inner, outer := l.ConeCos()
		cone = append(cone, inner, outer)
		rng = append(rng, l.Distance, max(l.Decay, 1))
	}
	setFloat(s, locs.localCount, float32(n))
	setVec(s, locs.localPos, pos, rl.ShaderUniformVec3, n)
	setVec(s, locs.localDir, ldir, rl.ShaderUniformVec3, n)
	setVec(s, locs.localColor, col, rl.ShaderUniformVec3, n)
	setVec(s, locs.localCone, cone, rl.ShaderUniformVec2, n)
	setVec(s, locs.localRange, rng, rl.ShaderUniformVec2, n)
	setFloat(s, locs.fogNear, rig.FogNear)
	setFloat(s, locs.fogFar, rig.FogFar)
	fc := rig.Background
	setVec(s, locs.fogColor, fc[:], rl.ShaderUniformVec3, 1)
}
