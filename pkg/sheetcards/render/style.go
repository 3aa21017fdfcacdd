package render

// stylesheet is the fixed CSS embedded in every document.
const stylesheet = `
    :root {
      --bg: #0f172a;
      --surface: #111827;
      --accent: #38bdf8;
      --muted: #cbd5e1;
      --text: #e2e8f0;
      --border: #1f2937;
    }

    * { box-sizing: border-box; }

    body {
      margin: 0;
      min-height: 100vh;
      background: radial-gradient(circle at 10% 20%, rgba(56, 189, 248, 0.08), transparent 25%),
                  radial-gradient(circle at 80% 10%, rgba(56, 189, 248, 0.06), transparent 25%),
                  var(--bg);
      color: var(--text);
      font-family: 'Inter', system-ui, -apple-system, sans-serif;
      padding: 32px 16px 48px;
    }

    .data-page {
      max-width: 960px;
      margin: 0 auto;
      display: flex;
      flex-direction: column;
      gap: 16px;
    }

    .data-page__header {
      display: flex;
      justify-content: space-between;
      align-items: center;
      gap: 16px;
      padding: 16px 20px;
      background: linear-gradient(135deg, rgba(56, 189, 248, 0.12), rgba(56, 189, 248, 0.04));
      border: 1px solid rgba(56, 189, 248, 0.24);
      border-radius: 16px;
      box-shadow: 0 10px 40px rgba(0, 0, 0, 0.25);
    }

    .data-page__title {
      margin: 0;
      font-size: 1.5rem;
      letter-spacing: -0.02em;
    }

    .data-page__meta {
      color: var(--muted);
      margin: 0;
      font-size: 0.95rem;
    }

    .data-block {
      background: linear-gradient(180deg, rgba(255, 255, 255, 0.02), rgba(255, 255, 255, 0));
      border: 1px solid var(--border);
      border-radius: 16px;
      padding: 16px 20px;
      box-shadow: 0 12px 30px rgba(0, 0, 0, 0.18);
      transition: transform 120ms ease, border-color 120ms ease;
    }

    .data-block:hover {
      transform: translateY(-2px);
      border-color: rgba(56, 189, 248, 0.35);
    }

    .data-block__title {
      margin: 0 0 12px 0;
      font-size: 1.05rem;
      color: var(--accent);
    }

    .data-block__fields {
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(240px, 1fr));
      gap: 10px 16px;
      margin: 0;
      padding: 0;
    }

    .data-block__field {
      padding: 10px 12px;
      border: 1px solid var(--border);
      border-radius: 12px;
      background: rgba(255, 255, 255, 0.02);
    }

    .data-block__label {
      margin: 0 0 4px 0;
      font-weight: 600;
      color: var(--muted);
      font-size: 0.9rem;
    }

    .data-block__value {
      margin: 0;
      font-size: 1rem;
      line-height: 1.4;
      word-break: break-word;
    }

    .data-page__empty {
      text-align: center;
      padding: 32px;
      color: var(--muted);
      border: 1px dashed rgba(255, 255, 255, 0.16);
      border-radius: 16px;
      background: rgba(255, 255, 255, 0.02);
    }
`
