package help

// InputShapeHint is the human-readable description of what a parseable
// exam document looks like. Hard document-level errors attach it so an
// empty result is never silently ambiguous between "nothing parsed" and
// "nothing present".
const InputShapeHint = `expected input shape:
  - questions start on a line like "12. <question text>"
  - multiple-choice options use one of: (1)..(4), A)..D), (A)..(D), A...D., 1...4.
  - the answer key looks like "Ans. (2)", "Answer: B", or "Correct answer is C"
  - worked solutions follow "Sol.", "Solution:", or "Explanation:"
  - LaTeX papers may group questions under \section*{SECTION-A} markers
  - subject headers (\section*{PHYSICS} etc.) tag the questions that follow`

// FormatsYAML is the quick-start reference printed by the formats command.
const FormatsYAML = `# exam-parser supported input formats

dialects:
  latex: "Section-scoped papers using \\section*{SECTION-A} / \\section*{SECTION-B} spans"
  markdown: "Generic Markdown or plain text, scanned line by line (default)"
  auto: "Detect from formatting signals (default)"

question_markers:
  numbered: '12. What is ...'
  note: "A numbered line starts a block only if the block later shows a question signal"

question_signals:
  - "an option marker (1)..(4)"
  - "Ans. / Sol. / Given: / Assume:"
  - "a stem phrase: Find the, Calculate the, Determine the, What is, How many, Which of the, Consider the, The ... is"

option_conventions:
  - "(1) .. (4)"
  - "A) .. D)"
  - "(A) .. (D)"
  - "A. .. D."
  - "1. .. 4."

answer_markers:
  - "Ans. (2)  /  Ans. B"
  - "Answer: 3"
  - "Correct answer is C"

solution_markers: ["Sol.", "Solution:", "Explanation:"]

marks_notations: ["4 / -1", "+4", "4 marks"]

image_references:
  markdown: "![alt](path/to/img.png)"
  html: '<img src="..." alt="...">'
  latex: "\\includegraphics[width=...]{path}"

metadata_lines:
  time: "Time: 3 hours"
  max_marks: "M.M : 300"
  year: "first 4-digit run anywhere in the document"

commands:
  parse_files: |
    exam-parser parse --sources "paper.md,https://example.com/paper.html"
  with_ranges: |
    exam-parser parse --sources paper.md --subject-ranges "1-25:Physics,26-50:Chemistry,51-75:Mathematics"
  export: |
    exam-parser export --source paper.md --board "JEE Main" --exam-id nta_jee_2024 --format json
  merge_key: |
    exam-parser merge-key --source paper.md --key answers.yaml
  list_runs: |
    exam-parser db runs
`
