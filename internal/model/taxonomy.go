// internal/model/taxonomy.go
package model

// FilterAny はフィルタの「制約なし」を表すセンチネル値です。
// クエリパラメータとしては決して送信されません。
const FilterAny = "Any"

// DomainSkillMap はSAT Reading & Writing のドメインとサブスキルの対応表。
// 設問のタクソノミーは固定なのでコードに持ちます。
var DomainSkillMap = map[string][]string{
	"Information and Ideas": {
		"Central Ideas and Details",
		"Command of Evidence",
		"Inferences",
	},
	"Craft and Structure": {
		"Words in Context",
		"Text Structure and Purpose",
		"Cross-Text Connections",
	},
	"Expression of Ideas": {
		"Rhetorical Synthesis",
		"Transitions",
	},
	"Standard English Conventions": {
		"Boundaries",
		"Form, Structure, and Sense",
	},
}

// Domains は表示順を保証するためのドメイン一覧 (mapの順序は不定のため)
var Domains = []string{
	"Information and Ideas",
	"Craft and Structure",
	"Expression of Ideas",
	"Standard English Conventions",
}

// Difficulties は難易度の取りうる値
var Difficulties = []string{"Easy", "Medium", "Hard", "Very Hard"}

// SkillsForDomain はドメインに属するスキル一覧を返します。未知のドメインは nil。
func SkillsForDomain(domain string) []string {
	return DomainSkillMap[domain]
}

// AllSkills は全ドメインのスキルをドメイン表示順で平坦化して返します。
func AllSkills() []string {
	var skills []string
	for _, d := range Domains {
		skills = append(skills, DomainSkillMap[d]...)
	}
	return skills
}

// FilterOptions は設問取得時のフィルタ条件。空文字および FilterAny は「制約なし」。
type FilterOptions struct {
	Domain     string `json:"domain,omitempty"`
	Skill      string `json:"skill,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// concrete は値が実際の制約かどうかを判定します。
func concrete(v string) bool {
	return v != "" && v != FilterAny
}

// ConcreteDomain は制約として有効なドメイン値を返します (無ければ "")
func (f FilterOptions) ConcreteDomain() string {
	if concrete(f.Domain) {
		return f.Domain
	}
	return ""
}

func (f FilterOptions) ConcreteSkill() string {
	if concrete(f.Skill) {
		return f.Skill
	}
	return ""
}

func (f FilterOptions) ConcreteDifficulty() string {
	if concrete(f.Difficulty) {
		return f.Difficulty
	}
	return ""
}

// Applied はレスポンス用の AppliedFilters 表現に変換します。
func (f FilterOptions) Applied() AppliedFilters {
	var a AppliedFilters
	if d := f.ConcreteDomain(); d != "" {
		a.Domain = &d
	}
	if s := f.ConcreteSkill(); s != "" {
		a.Skill = &s
	}
	if d := f.ConcreteDifficulty(); d != "" {
		a.Difficulty = &d
	}
	return a
}
