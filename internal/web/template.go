// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

// embeddedTemplate is the fallback dashboard served when no template.html is
// present on disk.
const embeddedTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Parrot Check</title>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 900px; color: #222; }
  h1 { font-size: 1.4rem; }
  textarea, input, select { width: 100%; box-sizing: border-box; padding: 6px; margin: 4px 0 12px; font: inherit; }
  textarea { min-height: 70px; }
  button { padding: 8px 16px; margin-right: 8px; cursor: pointer; }
  .valid { color: #1a7f37; font-weight: bold; }
  .invalid { color: #cf222e; font-weight: bold; }
  .flag { color: #9a6700; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { border: 1px solid #d0d7de; padding: 6px 8px; text-align: left; font-size: 0.85rem; vertical-align: top; }
  th { background: #f6f8fa; }
  #result { white-space: pre-wrap; background: #f6f8fa; padding: 12px; border-radius: 6px; display: none; }
  ul { margin: 4px 0; padding-left: 18px; }
</style>
</head>
<body>
<h1>Parrot Check &mdash; response validation dashboard</h1>

<label>Question</label>
<textarea id="question" placeholder="who is Albert Einstein?"></textarea>
<label>Response</label>
<textarea id="response" placeholder="Albert Einstein was a theoretical physicist."></textarea>
<label>Platform</label>
<input id="platform" value="web">
<button onclick="validatePair()">Validate</button>
<button onclick="loadRecords()">Refresh records</button>
<select id="exportFormat">
  <option value="json">json</option>
  <option value="csv">csv</option>
  <option value="yaml">yaml</option>
  <option value="text">text</option>
</select>
<button onclick="exportRecords()">Export</button>

<div id="result"></div>

<table id="records">
  <thead>
    <tr><th>When</th><th>Question</th><th>Verdict</th><th>Confidence</th><th>Issues</th><th></th></tr>
  </thead>
  <tbody></tbody>
</table>

<script>
async function validatePair() {
  const body = {
    question: document.getElementById('question').value,
    response: document.getElementById('response').value,
    platform: document.getElementById('platform').value
  };
  const res = await fetch('/validate', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body)
  });
  const data = await res.json();
  const el = document.getElementById('result');
  el.style.display = 'block';
  if (!data.success) {
    el.textContent = 'Error: ' + data.error;
    return;
  }
  const r = data.result;
  const verdict = r.is_valid ? 'VALID' : 'INVALID';
  let text = verdict + '  confidence ' + r.confidence.toFixed(2) + ' (' + r.confidence_level + ')';
  if (r.external_verification_required) text += '\nExternal verification required';
  if (data.duplicate) text += '\n(previously seen pair; record refreshed)';
  for (const issue of r.issues || []) text += '\n- ' + issue;
  text += '\n' + r.notes;
  el.textContent = text;
  loadRecords();
}

async function loadRecords() {
  const res = await fetch('/records');
  const data = await res.json();
  const tbody = document.querySelector('#records tbody');
  tbody.innerHTML = '';
  for (const rec of data.records || []) {
    const tr = document.createElement('tr');
    const verdict = rec.report.is_valid
      ? '<span class="valid">VALID</span>'
      : '<span class="invalid">INVALID</span>';
    const flag = rec.report.external_verification_required ? ' <span class="flag">&#9888;</span>' : '';
    const issues = (rec.report.issues || []).map(i => '<li>' + escapeHtml(i) + '</li>').join('');
    tr.innerHTML =
      '<td>' + new Date(rec.created_at).toLocaleString() + '</td>' +
      '<td>' + escapeHtml(rec.pair.question) + '</td>' +
      '<td>' + verdict + flag + '</td>' +
      '<td>' + rec.report.confidence.toFixed(2) + '</td>' +
      '<td><ul>' + issues + '</ul></td>' +
      '<td><button onclick="removeRecord(\'' + rec.id + '\')">remove</button></td>';
    tbody.appendChild(tr);
  }
}

async function removeRecord(id) {
  await fetch('/records/remove', {
    method: 'POST',
    headers: {'Content-Type': 'application/x-www-form-urlencoded'},
    body: 'id=' + encodeURIComponent(id)
  });
  loadRecords();
}

function exportRecords() {
  const format = document.getElementById('exportFormat').value;
  window.location = '/export?format=' + format;
}

function escapeHtml(s) {
  const div = document.createElement('div');
  div.textContent = s == null ? '' : s;
  return div.innerHTML;
}

loadRecords();
</script>
</body>
</html>
`
