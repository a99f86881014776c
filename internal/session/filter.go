// internal/session/filter.go
package session

import (
	"fmt"

	"sat_prep_keep/internal/model"
)

// FilterState は設問フィルタのUI状態です。
// 不変条件: skill が具体値のときは必ず選択中の domain のスキル集合に属します。
type FilterState struct {
	domain     string
	skill      string
	difficulty string
}

// NewFilterState は全次元が制約なしの状態を返します。
func NewFilterState() *FilterState {
	return &FilterState{
		domain:     model.FilterAny,
		skill:      model.FilterAny,
		difficulty: model.FilterAny,
	}
}

// SetDomain はドメインを切り替えます。整合性を保つため skill はリセットされます。
// 具体ドメインを選ぶとそのドメインの先頭スキル、"Any" なら "Any" になります。
func (f *FilterState) SetDomain(domain string) error {
	if domain == model.FilterAny {
		f.domain = model.FilterAny
		f.skill = model.FilterAny
		return nil
	}

	skills := model.SkillsForDomain(domain)
	if len(skills) == 0 {
		return fmt.Errorf("session: unknown domain %q", domain)
	}
	f.domain = domain
	f.skill = skills[0]
	return nil
}

// SetSkill はスキルを切り替えます。具体値は選択中ドメインのスキルに限られます。
func (f *FilterState) SetSkill(skill string) error {
	if skill == model.FilterAny {
		f.skill = model.FilterAny
		return nil
	}
	if f.domain == model.FilterAny {
		return fmt.Errorf("session: cannot set skill %q without a concrete domain", skill)
	}
	for _, s := range model.SkillsForDomain(f.domain) {
		if s == skill {
			f.skill = skill
			return nil
		}
	}
	return fmt.Errorf("session: skill %q does not belong to domain %q", skill, f.domain)
}

// SetDifficulty は難易度を切り替えます。
func (f *FilterState) SetDifficulty(difficulty string) error {
	if difficulty == model.FilterAny {
		f.difficulty = model.FilterAny
		return nil
	}
	for _, d := range model.Difficulties {
		if d == difficulty {
			f.difficulty = difficulty
			return nil
		}
	}
	return fmt.Errorf("session: unknown difficulty %q", difficulty)
}

func (f *FilterState) Domain() string     { return f.domain }
func (f *FilterState) Skill() string      { return f.skill }
func (f *FilterState) Difficulty() string { return f.difficulty }

// Options は現在の状態をAPIに渡すフィルタ条件に変換します。
func (f *FilterState) Options() model.FilterOptions {
	return model.FilterOptions{
		Domain:     f.domain,
		Skill:      f.skill,
		Difficulty: f.difficulty,
	}
}
