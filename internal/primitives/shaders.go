package primitives

// Point light with inverse-square falloff and a smooth range cutoff, flat ambient term,
// Blinn-Phong specular and exponential-squared fog. The textured variant multiplies colDiffuse
// by the albedo texel and ignores texel alpha, so transparent label pixels shade as black.
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
  fragNormal = mat3(transpose(inverse(matModel))) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litCommon = `
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float lightDistance;
uniform vec3 ambient;
uniform vec3 fogColor;
uniform float fogDensity;
uniform float specularPower;
uniform float metalness;
vec3 shade(vec3 albedo) {
  vec3 N = normalize(fragNormal);
  vec3 toLight = lightPos - fragPosition;
  float d = length(toLight);
  vec3 L = toLight / max(d, 0.0001);
  vec3 V = normalize(viewPos - fragPosition);
  float atten = lightIntensity / max(d * d, 0.01);
  if (lightDistance > 0.0) {
    float r = clamp(1.0 - pow(d / lightDistance, 4.0), 0.0, 1.0);
    atten *= r * r;
  }
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = albedo * (1.0 - metalness * 0.6) * NdotL * lightColor * atten / 3.14159265;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower);
  vec3 specColor = mix(vec3(0.04), albedo, metalness);
  vec3 specular = specColor * spec * lightColor * atten * (NdotL > 0.0 ? 1.0 : 0.0);
  vec3 color = ambient * albedo + diffuse + specular;
  float dist = length(viewPos - fragPosition);
  float fog = 1.0 - exp(-fogDensity * fogDensity * dist * dist);
  return mix(color, fogColor, clamp(fog, 0.0, 1.0));
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
out vec4 finalColor;
` + litCommon + `
void main() {
  finalColor = vec4(shade(colDiffuse.rgb), 1.0);
}
`
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform sampler2D texture0;
out vec4 finalColor;
` + litCommon + `
void main() {
  vec4 texColor = texture(texture0, fragTexCoord);
  finalColor = vec4(shade(texColor.rgb * colDiffuse.rgb), 1.0);
}
`
)
