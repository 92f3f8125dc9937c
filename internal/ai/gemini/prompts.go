package gemini

// AllocationAnalysisPromptTemplate asks for a strict-JSON review of a budget
// allocation proposal. The response must parse into the analysis schema or
// the caller falls back to the local computation.
//
// Placeholders: recipient, recipient type, amount, purpose, fiscal year.
const AllocationAnalysisPromptTemplate = `Analyze this budget allocation proposal for Nepal's government and return ONLY valid JSON (no markdown, no preamble):

{
  "feasibility_score": <number 0-100>,
  "risk_level": "<LOW|MEDIUM|HIGH>",
  "recommendations": [<array of 3-5 specific recommendations>],
  "potential_issues": [<array of 2-4 potential problems>],
  "benchmark_comparison": "<comparison with similar allocations>",
  "approval_recommendation": "<APPROVE|APPROVE_WITH_CONDITIONS|REJECT>"
}

Allocation Details:
- Recipient: %s
- Type: %s
- Amount: Rs. %d
- Purpose: %s
- Fiscal Year: %s

Consider: Nepal's economic context, past allocation patterns, recipient's capacity, and purpose alignment with national priorities. Your response must start with { and end with }.`

// ContractorRatingPromptTemplate asks for a strict-JSON performance rating of
// a contractor based on their project history. The response must parse into
// the rating schema or the caller falls back to the local computation.
//
// Placeholder: the formatted performance data block.
const ContractorRatingPromptTemplate = `Analyze this contractor's performance and generate a comprehensive rating. Return ONLY valid JSON (no markdown, no preamble):

{
  "overall_rating": <number 0-5 with decimals>,
  "categories": {
    "time_management": <number 0-5>,
    "budget_adherence": <number 0-5>,
    "quality": <number 0-5>,
    "safety": <number 0-5>
  },
  "strengths": [<array of 3-5 specific strengths>],
  "concerns": [<array of 2-4 specific concerns or areas for improvement>],
  "recommendation": "<detailed recommendation for future project assignments>"
}

%s

Consider:
- On-time delivery rate
- Budget management (over/under spending)
- Project completion rate
- Consistency across projects
- Scale and complexity of projects handled

Your response must start with { and end with }.`

// FeasibilityPromptTemplate asks for a free-text feasibility report on a
// proposed infrastructure project.
//
// Placeholders: title, description, budget, size, start date, end date,
// province, local unit, priority.
const FeasibilityPromptTemplate = `As an infrastructure expert, analyze this proposed project for Nepal:

Project: %s
Description: %s
Budget: Rs. %d
Size Category: %s
Timeline: %s to %s
Location: %s, %s
Priority: %s

Provide a comprehensive analysis covering:

1. FEASIBILITY ASSESSMENT
   - Technical feasibility
   - Financial viability
   - Timeline reasonableness

2. RISK ANALYSIS
   - Major risks and challenges
   - Mitigation strategies

3. BUDGET EVALUATION
   - Is the budget appropriate for this project type?
   - Comparison with similar projects
   - Cost breakdown suggestions

4. RECOMMENDATIONS
   - Should this project be approved?
   - Required modifications or conditions
   - Alternative approaches

5. SUCCESS FACTORS
   - Key elements needed for success
   - Critical milestones to monitor

Format your response clearly with headers and bullet points.`
