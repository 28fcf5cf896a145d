package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type ExtractParameters struct {
	Title      string `yaml:"Title"`
	OutputBase string `yaml:"OutputBase"`
	Parts      []int  `yaml:"Parts"` // empty means every discovered part
	Verbose    bool   `yaml:"Verbose"`
	Force      bool   `yaml:"Force"` // overwrite outputs without asking
}

func (ip *ExtractParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// WantsPart reports whether pid is selected by the Parts filter.
func (ip *ExtractParameters) WantsPart(pid int) bool {
	if len(ip.Parts) == 0 {
		return true
	}
	for _, p := range ip.Parts {
		if p == pid {
			return true
		}
	}
	return false
}

func (ip *ExtractParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= OutputBase\n", ip.OutputBase)
	fmt.Printf("[%v]\t\t\t= Force\n", ip.Force)
	parts := make([]int, len(ip.Parts))
	copy(parts, ip.Parts)
	sort.Ints(parts)
	fmt.Printf("Parts = %v\n", parts)
}
