package site

// StyleSheet is served at StyleSheetPath.
const StyleSheet = `body {
    font-family: system-ui, sans-serif;
    margin: 0 auto;
    max-width: 40rem;
    padding: 2rem;
}

.greetings {
    list-style: none;
    padding: 0.25rem 0;
}

.clock {
    color: #555;
}

.custom-element {
    font-size: 0.8rem;
    font-style: normal;
}
`
