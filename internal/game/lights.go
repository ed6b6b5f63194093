package game

import (
	"fmt"

	"github.com/Faultbox/seaworld/internal/engine/lighting"
	"github.com/Faultbox/seaworld/internal/engine/shader"
)

// pointUniforms caches the uniform names of pointLights[i].
var pointUniforms [lighting.MaxPointLights]struct {
	position, ambient, diffuse, specular, constant, linear, quadratic string
}

func init() {
	for i := range pointUniforms {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u := &pointUniforms[i]
		u.position = prefix + "position"
		u.ambient = prefix + "ambient"
		u.diffuse = prefix + "diffuse"
		u.specular = prefix + "specular"
		u.constant = prefix + "constant"
		u.linear = prefix + "linear"
		u.quadratic = prefix + "quadratic"
	}
}

// setLights uploads the rig to p, which must be in use.
func setLights(p *shader.Program, rig *lighting.Rig) {
	p.SetVec3("dirLight.direction", rig.Dir.Direction)
	p.SetVec3("dirLight.ambient", rig.Dir.Ambient)
	p.SetVec3("dirLight.diffuse", rig.Dir.Diffuse)
	p.SetVec3("dirLight.specular", rig.Dir.Specular)

	for i, l := range rig.Points {
		u := pointUniforms[i]
		p.SetVec3(u.position, l.Position)
		p.SetVec3(u.ambient, l.Ambient)
		p.SetVec3(u.diffuse, l.Diffuse)
		p.SetVec3(u.specular, l.Specular)
		p.SetFloat(u.constant, l.Constant)
		p.SetFloat(u.linear, l.Linear)
		p.SetFloat(u.quadratic, l.Quadratic)
	}

	s := rig.Spot
	p.SetVec3("spotLight.position", s.Position)
	p.SetVec3("spotLight.direction", s.Direction)
	p.SetFloat("spotLight.cutOff", s.CutOff)
	p.SetFloat("spotLight.outerCutOff", s.OuterCutOff)
	p.SetVec3("spotLight.ambient", s.Ambient)
	p.SetVec3("spotLight.diffuse", s.Diffuse)
	p.SetVec3("spotLight.specular", s.Specular)
	p.SetFloat("spotLight.constant", s.Constant)
	p.SetFloat("spotLight.linear", s.Linear)
	p.SetFloat("spotLight.quadratic", s.Quadratic)
}
