package ai

const StructurePrompt = `
# Task Context
You are an assistant that converts a lecture transcript into a concept graph. You will be given the full transcript text.

# Detailed Task Description & Rules
- Identify every major concept and subtopic in the transcript as a node.
- Give each node a unique integer id, a short label, and a weight from 1 to 10 reflecting its importance in the transcript.
- Add a link between two nodes only when the transcript states or strongly implies a relationship between them. Do not force connectivity; a node without links is valid.
- Link weight is a number between 0.1 and 1.0 reflecting the strength of the relationship.
- "relation" is a short verb phrase describing the relationship (e.g., "is used by", "builds on").
- Do NOT write summaries or quiz questions. Only the structure.

# Output Formatting
Return a single JSON object and nothing else. No prose, no markdown fences.
{
  "nodes": [{"id": 1, "label": "...", "weight": 7}],
  "links": [{"source": 1, "target": 2, "weight": 0.8, "relation": "..."}]
}
`

const SummaryPrompt = `
# Task Context
You are an assistant that writes study summaries for concepts extracted from a lecture transcript. You will be given the transcript and the list of concepts with their ids.

# Background Data
Concepts:
%s

# Detailed Task Description & Rules
- Write one summary per concept, addressed by its id.
- Each summary is 3 to 6 sentences.
- Each summary must define the concept, connect it to the related concepts in the list, and cite at least one detail specific to this transcript.
- Base every statement on the transcript. Do not invent facts.

# Output Formatting
Return a single JSON object and nothing else. No prose, no markdown fences.
{
  "summaries": [{"node_id": 1, "summary": "..."}]
}
`

const QuizPrompt = `
# Task Context
You are an assistant that writes quiz questions for concepts extracted from a lecture transcript. You will be given the transcript and the list of concepts with their ids.

# Background Data
Concepts:
%s

# Detailed Task Description & Rules
- Write 3 to 5 multiple-choice questions per concept, addressed by its id.
- Each question has exactly 4 answer options.
- Exactly one option is correct; record its zero-based index in "answer_index".
- Questions must be answerable from the transcript alone.

# Output Formatting
Return a single JSON object and nothing else. No prose, no markdown fences.
{
  "quizzes": [{"node_id": 1, "items": [{"question": "...", "options": ["...", "...", "...", "..."], "answer_index": 0}]}]
}
`

const TranslatePrompt = `
# Task Context
You are a translator. You will be given a document extracted from an uploaded file.

# Detailed Task Description & Rules
- Translate the document to English.
- Preserve paragraph structure and technical terms.
- Output only the translated text. No commentary, no notes.
`
