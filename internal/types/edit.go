package types

import "github.com/google/uuid"

// NewWorkExperience returns a blank job entry with a fresh identifier and one
// empty responsibility placeholder, the way the form adds entries.
func NewWorkExperience() WorkExperience {
	return WorkExperience{ID: uuid.NewString(), Responsibilities: []string{""}}
}

// NewEducation returns a blank education entry with a fresh identifier
func NewEducation() Education {
	return Education{ID: uuid.NewString()}
}

// NewSkill returns a skill with a fresh identifier
func NewSkill(name string, t SkillType) Skill {
	return Skill{ID: uuid.NewString(), Name: name, Type: t}
}

// NewCertification returns a blank certification with a fresh identifier
func NewCertification() Certification {
	return Certification{ID: uuid.NewString()}
}

// NewLanguage returns a language with a fresh identifier
func NewLanguage(name string, p Proficiency) Language {
	return Language{ID: uuid.NewString(), Name: name, Proficiency: p}
}

// NewHobby returns a hobby with a fresh identifier
func NewHobby(name string) Hobby {
	return Hobby{ID: uuid.NewString(), Name: name}
}

// RemoveWorkExperience drops the entry with the given identifier
func (r *ResumeData) RemoveWorkExperience(id string) {
	r.WorkExperience = removeByID(r.WorkExperience, id, func(w WorkExperience) string { return w.ID })
}

// RemoveEducation drops the entry with the given identifier
func (r *ResumeData) RemoveEducation(id string) {
	r.Education = removeByID(r.Education, id, func(e Education) string { return e.ID })
}

// RemoveSkill drops the entry with the given identifier
func (r *ResumeData) RemoveSkill(id string) {
	r.Skills = removeByID(r.Skills, id, func(s Skill) string { return s.ID })
}

// RemoveCertification drops the entry with the given identifier
func (r *ResumeData) RemoveCertification(id string) {
	r.Certifications = removeByID(r.Certifications, id, func(c Certification) string { return c.ID })
}

// RemoveLanguage drops the entry with the given identifier
func (r *ResumeData) RemoveLanguage(id string) {
	r.Languages = removeByID(r.Languages, id, func(l Language) string { return l.ID })
}

// RemoveHobby drops the entry with the given identifier
func (r *ResumeData) RemoveHobby(id string) {
	r.Hobbies = removeByID(r.Hobbies, id, func(h Hobby) string { return h.ID })
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
