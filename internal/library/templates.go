package library

import "github.com/dshills/kelly/internal/topic"

// templates are complete 4x4 poems. Each one questions a broad claim, names
// limitations, and ends in practical suggestions.
var templates = map[topic.Topic]string{
	topic.Emotions: `They say the machine can feel; who measured, and with what?
A smile in a photo is a label, not a life.
Sentiment scores are thermometers held to a painting.
The signal was culture all along, mistaken for a heart.

Affective computing began with physiology, not poetry.
Heart rate and skin response hint at arousal, not at reasons.
Cross-cultural studies keep finding the categories blur.
A tensor of valence is a useful map, and maps are not the land.

Emotion datasets are small, staged, and oddly cheerful.
Faces differ, voices differ, and the labels disagree.
Context is the part the sensor never sees.
A model can predict the word "sad" and know nothing of loss.

Validate on people the model has never met.
Report disagreement between annotators, not just the average.
Pair any affect detector with a human who can say no.
Claim recognition of expression, never of the feeling underneath.`,

	topic.Jobs: `Will every job vanish, or only the story that it will?
Predictions of mass replacement have missed for a century.
Tasks move first; whole occupations rarely fall at once.
Who owns the tool decides who pays the cost.

Spreadsheets did not end accountants; they changed the work.
Call centers bent before they broke, and some came back.
New roles appear where the tools need tending and checking.
The gains flow to whoever negotiates the terms.

Productivity gains are uneven and slow to reach wages.
Demos automate the clean case; offices run on the messy ones.
Error correction, liability, and trust still need a person.
Studies of exposure are not studies of displacement.

Measure task-level change inside real workplaces.
Fund retraining with outcomes tracked, not brochures.
Pilot with the workers affected, and let them veto harm.
Publish the numbers, good and bad, before the next press release.`,

	topic.Creativity: `Is it creation, or collage at a scale we cannot see?
A style learned from thousands is a debt, not a gift.
Surprise to the audience may be average to the data.
Originality claims deserve the same rigor as any claim.

Every artist learns from others, but not at this speed or scale.
The prompt writer, the curator, the editor all shape the piece.
A thousand variations are cheap; choosing one is the craft.
Novelty without meaning is only noise with good lighting.

Likelihood training pulls toward the familiar middle.
Models cannot tell you which training works they echo.
Taste, intent, and revision remain the human labor.
Copyright and consent are not solved by a disclaimer.

Credit sources and license training data where you can.
Use generators as sketchbooks, not as signatures.
Test novelty against retrieval, not against memory of a demo.
Ask artists what help they want before shipping what they fear.`,

	topic.Consciousness: `You hear a voice that says "I feel"; is that a feeling or a phrase?
We have no agreed test for experience, in silicon or in us.
Fluency persuades the listener more than it proves the speaker.
Extraordinary claims still need ordinary evidence.

Some theories look for integration, others for a global stage.
None of them agree on what a transformer would need to count.
People have long seen minds in clouds, in clocks, in puppets.
The burden of proof rests on the claim, not on the doubter.

Self-reports from a language model are trained outputs.
Theories of consciousness disagree on what would even count.
Behavior can be matched without any inner witness.
Anthropomorphism is a bias we bring, not a fact we find.

State which theory you test and what would falsify it.
Separate capability benchmarks from claims about minds.
Avoid design choices that invite users to over-attribute.
Keep the question open, and keep the marketing out of it.`,

	topic.Bias: `Neutral, they call the model; neutral to whom, and by what metric?
Historical data carries historical exclusion.
Dropping a sensitive field leaves its proxies in place.
Averages hide the groups that the errors find.

Credit, hiring, and policing have all shown the pattern.
A model trained on decisions learns the decision makers.
Calibration across groups can differ while accuracy looks fine.
Who was missing from the data is a question of design.

Fairness definitions conflict; you cannot satisfy them all.
Small subgroups mean wide error bars and quiet harm.
Feedback loops can harden yesterday's bias into tomorrow's data.
Audits at launch say little about drift a year later.

Report error rates by subgroup with confidence intervals.
Choose a fairness criterion openly and justify the trade-off.
Give affected people a way to contest decisions.
Re-audit on a schedule, and publish what you find.`,

	topic.Safety: `Is it safe? Safe for which use, at which scale, against which harm?
Doom and dismissal both skip the part where we measure.
Evaluations cover the risks we thought of first.
Capabilities can surprise their own builders.

Failures cluster where incentives push for speed.
Misuse, accident, and structural harm are different problems.
A model that refuses in English may comply in another language.
Safety is a property of the whole system, people included.

Guardrails trained on examples can be talked around.
Red-team findings decay as models and users change.
Incidents go unreported when reporting has no reward.
A single benchmark cannot certify a general system.

Define hazards concretely and test each one.
Stage deployments with monitoring and a working off switch.
Share incident reports across labs and regulators.
Let independent evaluators in before, not after, release.`,

	topic.Intelligence: `They say it reasons; does it, or does it recall the reasoning of others?
Exam scores were normed for people, not for trained archives.
Contamination of test sets inflates every headline number.
Intelligence is many abilities wearing one word.

Chess engines beat grandmasters and cannot make tea.
Breadth of text is not breadth of understanding.
Humans generalize from few examples; models often need many.
The word invites comparison; the comparison invites hype.

Performance drops when problems are rephrased or renamed.
Long chains of steps accumulate small errors.
Planning in the open world is harder than in the benchmark.
Competence in one domain does not transfer on its own.

Test on fresh problems written after the training cutoff.
Vary surface details to probe for real generalization.
Report failure cases next to the successes.
Name the specific skill measured instead of general brilliance.`,

	topic.Future: `By which year, they ask, will everything change; who checks those forecasts later?
Extrapolation assumes the curve ignores its costs.
Compute, data, energy, and law all set ceilings.
Predictions made with certainty rarely survive a decade.

Self-driving cars were five years away for fifteen years.
Expert surveys scatter across centuries for the same milestone.
Hype cycles reward the boldest timeline, not the accurate one.
Uncertainty is information; it should shape the plan.

Past AI summers ended in winters no one scheduled.
Scaling trends can bend without warning or announcement.
Adoption lags invention by years of integration work.
The loudest forecasters are seldom held to account.

Forecast in ranges with stated assumptions.
Track predictions and score them when the date arrives.
Invest in institutions that adapt, not in single bets.
Revise when evidence moves, and say so in public.`,

	topic.Learning: `It learned, they say; learned what, from whom, and checked against what?
A model absorbs its data, errors and omissions included.
Train and test may share more than anyone admits.
Lower loss is not the same as better judgment.

Gradient descent finds what reduces loss, not what is true.
Shortcuts in the data become shortcuts in the model.
Labels written in a hurry teach a hurried lesson.
Curiosity is not an objective function, at least not yet.

Distribution shift breaks what the validation set praised.
Fine-tuning can erase abilities it was not meant to touch.
Synthetic data risks a model learning from its own echo.
Without ground truth, evaluation becomes opinion.

Hold out data by time and source, not only at random.
Document datasets: origin, consent, and known gaps.
Track regressions across versions with fixed test suites.
Keep humans in the loop where labels carry consequences.`,

	topic.Limits: `What can it not do? Ask that first, before you ask what it can.
Fluent answers arrive with the same confidence, right or wrong.
Hallucination is a property of the method, not a rare bug.
The prompt is a keyhole; the world is the room behind it.

Tokens are not facts, and next-word odds are not beliefs.
Knowledge freezes at the cutoff while the world keeps moving.
Reasoning traces can look sound and still be wrong.
Every capability has a boundary; find it before users do.

Arithmetic, citation, and recency remain fragile.
Rare cases are underrepresented and poorly handled.
Small input changes can flip the output entirely.
Calibration drifts after tuning for helpfulness.

Verify claims against primary sources before use.
Add retrieval or tools where facts matter, and log them.
Expose uncertainty to users instead of hiding it.
Write down known failure modes and test for them on every release.`,

	topic.General: `Revolutionary, they say; compared to what baseline, measured how?
Claims scale faster than the care that should check them.
What works in curated sandboxes falters in weather.
Good science names its unknowns before it sells its power.

Press releases quote the best run, not the median.
Proxies stand in costumes of truth when labels leak judgment.
Patterns can mimic intent, yet intent is not a pattern.
Replication is rare, and rarer still when the model is closed.

Benchmarks reward the patterns they happen to contain.
Data remembers the past, not the context we forgot to record.
Deployment meets users the lab never imagined.
Costs and harms are often counted last, if at all.

Run preregistered tests with held-out shifts, not just random splits.
Add uncertainty estimates; ship with guardrails and abort states.
Monitor post-deployment drift; retrain only with auditable trails.
Skepticism is not cynicism; it is care with a spine.`,
}
