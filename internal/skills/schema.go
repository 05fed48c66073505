package skills

// vocabularySchema validates vocabulary config artifacts: a non-empty list of
// non-empty skill terms. A copy ships at schemas/skill_vocabulary.schema.json
// for editors and external tooling.
const vocabularySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Skill Vocabulary",
  "type": "object",
  "required": ["skills"],
  "additionalProperties": false,
  "properties": {
    "skills": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "string",
        "minLength": 1
      }
    }
  }
}`
